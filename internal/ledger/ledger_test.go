package ledger

import (
	"context"
	"errors"
	"testing"

	"eventticketing/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	dai     domain.AssetID = "DAI"
	custody domain.Address = "0xcustody"
	owner   domain.Address = "0xowner"
	alice   domain.Address = "0xalice"
	bob     domain.Address = "0xbob"
	carol   domain.Address = "0xcarol"
)

type move struct {
	from, to domain.Address
	amount   uint64
}

// fakeGateway is an in-memory AssetGateway. onMove, when set, runs before the
// move is applied and may re-enter the ledger.
type fakeGateway struct {
	spendable map[domain.Address]uint64
	moves     []move
	moveErr   error
	queryErr  error
	onMove    func(ctx context.Context, m move) error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{spendable: make(map[domain.Address]uint64)}
}

func (g *fakeGateway) SpendableBalance(ctx context.Context, addr domain.Address) (uint64, error) {
	if g.queryErr != nil {
		return 0, g.queryErr
	}
	return g.spendable[addr], nil
}

func (g *fakeGateway) MoveFunds(ctx context.Context, from, to domain.Address, amount uint64) error {
	m := move{from: from, to: to, amount: amount}
	if g.onMove != nil {
		if err := g.onMove(ctx, m); err != nil {
			return err
		}
	}
	if g.moveErr != nil {
		return g.moveErr
	}
	g.moves = append(g.moves, m)
	return nil
}

func newTestLedger(t *testing.T) (*Ledger, *fakeGateway) {
	t.Helper()
	gw := newFakeGateway()
	l := New(Config{
		SettlementAsset: dai,
		Custody:         custody,
		Gateways:        map[domain.AssetID]domain.AssetGateway{dai: gw},
	})
	return l, gw
}

// requireConsistent checks the supply invariants for every event.
func requireConsistent(t *testing.T, l *Ledger) {
	t.Helper()
	for _, name := range l.EventNames() {
		ev, err := l.GetEventData(name)
		require.NoError(t, err)
		require.LessOrEqual(t, ev.TicketQuantityIssued, ev.TicketQuantity, name)
		require.Equal(t, int(ev.TicketQuantityIssued), l.CountHolders(name), name)
	}
}

func TestLedger_CreateEvent(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.CreateEvent(owner, "TestEvent0", 40, 0)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.False(t, l.EventExists("TestEvent0"))

	ev, err := l.CreateEvent(owner, "TestEvent0", 40, 3)
	require.NoError(t, err)
	assert.Equal(t, &domain.Event{Name: "TestEvent0", Owner: owner, TicketPrice: 40, TicketQuantity: 3}, ev)

	got, err := l.GetEventData("TestEvent0")
	require.NoError(t, err)
	assert.Equal(t, ev, got)
	assert.True(t, l.GetCheckerStatus("TestEvent0", owner))

	_, err = l.CreateEvent(alice, "TestEvent0", 10, 1)
	require.ErrorIs(t, err, domain.ErrAlreadyExists)

	// Names are case sensitive.
	_, err = l.CreateEvent(alice, "testevent0", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"TestEvent0", "testevent0"}, l.EventNames())

	notes := l.TakeNotifications()
	require.Len(t, notes, 2)
	assert.Equal(t, domain.ActivityEventCreated, notes[0].Kind())
	assert.Equal(t, &domain.EventCreated{
		NameHash: NameHash("TestEvent0"),
		Name:     "TestEvent0",
		Owner:    owner,
		Price:    40,
		Quantity: 3,
	}, notes[0].EventCreated)
	assert.Empty(t, l.TakeNotifications())
}

func TestLedger_GetEventData_NotFound(t *testing.T) {
	l, _ := newTestLedger(t)
	_, err := l.GetEventData("missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, l.GetCheckerStatus("missing", owner))
	assert.Equal(t, domain.TicketNone, l.GetTicketStatus("missing", owner))
}

func TestNameHash(t *testing.T) {
	// Keccak-256 of the empty string.
	assert.Equal(t, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", NameHash(""))
	assert.NotEqual(t, NameHash("a"), NameHash("A"))
}

func TestLedger_Checkers(t *testing.T) {
	l, _ := newTestLedger(t)
	_, err := l.CreateEvent(owner, "ev", 40, 3)
	require.NoError(t, err)

	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{"add on missing event", func() error { return l.AddChecker(owner, "missing", alice) }, domain.ErrNotFound},
		{"add by non-owner", func() error { return l.AddChecker(alice, "ev", bob) }, domain.ErrUnauthorized},
		{"add", func() error { return l.AddChecker(owner, "ev", alice) }, nil},
		{"add twice", func() error { return l.AddChecker(owner, "ev", alice) }, domain.ErrAlreadyChecker},
		{"checker cannot add", func() error { return l.AddChecker(alice, "ev", bob) }, domain.ErrUnauthorized},
		{"remove on missing event", func() error { return l.RemoveChecker(owner, "missing", alice) }, domain.ErrNotFound},
		{"remove by non-owner", func() error { return l.RemoveChecker(bob, "ev", alice) }, domain.ErrUnauthorized},
		{"remove non-checker", func() error { return l.RemoveChecker(owner, "ev", bob) }, domain.ErrNotAChecker},
		{"remove", func() error { return l.RemoveChecker(owner, "ev", alice) }, nil},
		{"re-add", func() error { return l.AddChecker(owner, "ev", alice) }, nil},
	}
	for _, tt := range tests {
		err := tt.run()
		if tt.wantErr != nil {
			require.ErrorIs(t, err, tt.wantErr, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
	}
	assert.True(t, l.GetCheckerStatus("ev", alice))
	assert.False(t, l.GetCheckerStatus("ev", bob))
}

func TestLedger_OwnerCanRemoveThemself(t *testing.T) {
	l, _ := newTestLedger(t)
	_, err := l.CreateEvent(owner, "ev", 0, 1)
	require.NoError(t, err)
	require.NoError(t, l.RemoveChecker(owner, "ev", owner))
	assert.False(t, l.GetCheckerStatus("ev", owner))
	require.ErrorIs(t, l.CheckInTicket(owner, "ev", alice), domain.ErrUnauthorized)
	// Ownership is unaffected.
	require.NoError(t, l.AddChecker(owner, "ev", owner))
}

func TestLedger_OwnerIssueTicket(t *testing.T) {
	l, _ := newTestLedger(t)
	_, err := l.CreateEvent(owner, "ev", 40, 2)
	require.NoError(t, err)

	require.ErrorIs(t, l.OwnerIssueTicket(owner, "missing", alice), domain.ErrNotFound)
	require.ErrorIs(t, l.OwnerIssueTicket(bob, "ev", alice), domain.ErrUnauthorized)

	require.NoError(t, l.OwnerIssueTicket(owner, "ev", alice))
	assert.Equal(t, domain.TicketUnclaimed, l.GetTicketStatus("ev", alice))
	require.ErrorIs(t, l.OwnerIssueTicket(owner, "ev", alice), domain.ErrAlreadyHasTicket)

	require.NoError(t, l.OwnerIssueTicket(owner, "ev", bob))
	require.ErrorIs(t, l.OwnerIssueTicket(owner, "ev", carol), domain.ErrSoldOut)

	ev, err := l.GetEventData("ev")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), ev.TicketQuantityIssued)
	assert.Equal(t, domain.TicketNone, l.GetTicketStatus("ev", carol))
	requireConsistent(t, l)
}

func TestLedger_BuyTicketWithAsset(t *testing.T) {
	l, gw := newTestLedger(t)
	_, err := l.CreateEvent(owner, "ev", 40, 3)
	require.NoError(t, err)
	gw.spendable[alice] = 40

	require.NoError(t, l.BuyTicketWithAsset(context.Background(), alice, "ev", alice))

	assert.Equal(t, domain.TicketUnclaimed, l.GetTicketStatus("ev", alice))
	assert.Equal(t, uint64(40), l.GetBalance(owner, dai))
	ev, err := l.GetEventData("ev")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), ev.TicketQuantityIssued)
	assert.Equal(t, []move{{from: alice, to: custody, amount: 40}}, gw.moves)
	requireConsistent(t, l)
}

func TestLedger_BuyTicketWithAsset_ForAnotherReceiver(t *testing.T) {
	l, gw := newTestLedger(t)
	_, err := l.CreateEvent(owner, "ev", 25, 3)
	require.NoError(t, err)
	gw.spendable[alice] = 100

	require.NoError(t, l.BuyTicketWithAsset(context.Background(), alice, "ev", bob))
	assert.Equal(t, domain.TicketNone, l.GetTicketStatus("ev", alice))
	assert.Equal(t, domain.TicketUnclaimed, l.GetTicketStatus("ev", bob))
	assert.Equal(t, []move{{from: alice, to: custody, amount: 25}}, gw.moves)
}

func TestLedger_BuyTicketWithAsset_Failures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(l *Ledger, gw *fakeGateway)
		wantErr error
	}{
		{
			name:    "event does not exist",
			setup:   func(l *Ledger, gw *fakeGateway) {},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "insufficient funds",
			setup: func(l *Ledger, gw *fakeGateway) {
				_, _ = l.CreateEvent(owner, "ev", 800000, 3)
				gw.spendable[alice] = 10000
			},
			wantErr: domain.ErrInsufficientFunds,
		},
		{
			name: "sold out",
			setup: func(l *Ledger, gw *fakeGateway) {
				_, _ = l.CreateEvent(owner, "ev", 40, 1)
				_ = l.OwnerIssueTicket(owner, "ev", bob)
				gw.spendable[alice] = 100
			},
			wantErr: domain.ErrSoldOut,
		},
		{
			name: "receiver already has ticket",
			setup: func(l *Ledger, gw *fakeGateway) {
				_, _ = l.CreateEvent(owner, "ev", 40, 3)
				_ = l.OwnerIssueTicket(owner, "ev", alice)
				gw.spendable[alice] = 100
			},
			wantErr: domain.ErrAlreadyHasTicket,
		},
		{
			name: "transfer fails",
			setup: func(l *Ledger, gw *fakeGateway) {
				_, _ = l.CreateEvent(owner, "ev", 40, 3)
				gw.spendable[alice] = 100
				gw.moveErr = errors.New("reverted")
			},
			wantErr: domain.ErrAssetTransferFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, gw := newTestLedger(t)
			tt.setup(l, gw)
			before, _ := l.GetEventData("ev")
			l.TakeNotifications()

			err := l.BuyTicketWithAsset(ctx, alice, "ev", alice)
			require.ErrorIs(t, err, tt.wantErr)

			after, _ := l.GetEventData("ev")
			assert.Equal(t, before, after)
			assert.Equal(t, uint64(0), l.GetBalance(owner, dai))
			assert.Empty(t, gw.moves)
			assert.Empty(t, l.TakeNotifications())
			requireConsistent(t, l)
		})
	}
}

func TestLedger_BuyTicketWithAsset_QueryError(t *testing.T) {
	l, gw := newTestLedger(t)
	_, err := l.CreateEvent(owner, "ev", 40, 3)
	require.NoError(t, err)
	gw.queryErr = errors.New("rpc down")

	err = l.BuyTicketWithAsset(context.Background(), alice, "ev", alice)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rpc down")
	assert.Equal(t, domain.TicketNone, l.GetTicketStatus("ev", alice))
}

func TestLedger_BuyTicketWithAsset_FreeEvent(t *testing.T) {
	l, gw := newTestLedger(t)
	_, err := l.CreateEvent(owner, "free", 0, 1)
	require.NoError(t, err)

	require.NoError(t, l.BuyTicketWithAsset(context.Background(), alice, "free", alice))
	assert.Equal(t, domain.TicketUnclaimed, l.GetTicketStatus("free", alice))
	assert.Equal(t, uint64(0), l.GetBalance(owner, dai))
	require.Len(t, gw.moves, 1)
}

func TestLedger_TransferUnclaimedTicket(t *testing.T) {
	l, _ := newTestLedger(t)
	_, err := l.CreateEvent(owner, "ev", 40, 3)
	require.NoError(t, err)
	require.NoError(t, l.OwnerIssueTicket(owner, "ev", alice))
	require.NoError(t, l.OwnerIssueTicket(owner, "ev", bob))

	require.ErrorIs(t, l.TransferUnclaimedTicket(alice, "missing", carol), domain.ErrNotFound)
	require.ErrorIs(t, l.TransferUnclaimedTicket(carol, "ev", alice), domain.ErrNoUnclaimedTicket)
	require.ErrorIs(t, l.TransferUnclaimedTicket(alice, "ev", bob), domain.ErrAlreadyHasTicket)
	require.ErrorIs(t, l.TransferUnclaimedTicket(alice, "ev", alice), domain.ErrAlreadyHasTicket)

	require.NoError(t, l.TransferUnclaimedTicket(alice, "ev", carol))
	assert.Equal(t, domain.TicketNone, l.GetTicketStatus("ev", alice))
	assert.Equal(t, domain.TicketUnclaimed, l.GetTicketStatus("ev", carol))
	ev, err := l.GetEventData("ev")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), ev.TicketQuantityIssued)
	requireConsistent(t, l)

	// Claimed tickets cannot move.
	require.NoError(t, l.CheckInTicket(owner, "ev", carol))
	require.ErrorIs(t, l.TransferUnclaimedTicket(carol, "ev", alice), domain.ErrNoUnclaimedTicket)
}

func TestLedger_BurnUnclaimedTicket(t *testing.T) {
	l, _ := newTestLedger(t)
	_, err := l.CreateEvent(owner, "ev", 40, 1)
	require.NoError(t, err)

	require.ErrorIs(t, l.BurnUnclaimedTicket(alice, "missing"), domain.ErrNotFound)
	require.ErrorIs(t, l.BurnUnclaimedTicket(alice, "ev"), domain.ErrNoUnclaimedTicket)

	require.NoError(t, l.OwnerIssueTicket(owner, "ev", alice))
	require.ErrorIs(t, l.OwnerIssueTicket(owner, "ev", bob), domain.ErrSoldOut)

	require.NoError(t, l.BurnUnclaimedTicket(alice, "ev"))
	assert.Equal(t, domain.TicketNone, l.GetTicketStatus("ev", alice))
	ev, err := l.GetEventData("ev")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), ev.TicketQuantityIssued)

	// Burnt supply can be issued again.
	require.NoError(t, l.OwnerIssueTicket(owner, "ev", bob))
	require.NoError(t, l.CheckInTicket(owner, "ev", bob))
	require.ErrorIs(t, l.BurnUnclaimedTicket(bob, "ev"), domain.ErrNoUnclaimedTicket)
	requireConsistent(t, l)
}

func TestLedger_CheckInTicket(t *testing.T) {
	l, _ := newTestLedger(t)
	_, err := l.CreateEvent(owner, "ev", 40, 3)
	require.NoError(t, err)
	require.NoError(t, l.AddChecker(owner, "ev", carol))
	require.NoError(t, l.OwnerIssueTicket(owner, "ev", alice))

	require.ErrorIs(t, l.CheckInTicket(carol, "missing", alice), domain.ErrNotFound)
	require.ErrorIs(t, l.CheckInTicket(bob, "ev", alice), domain.ErrUnauthorized)

	require.NoError(t, l.CheckInTicket(carol, "ev", alice))
	assert.Equal(t, domain.TicketClaimed, l.GetTicketStatus("ev", alice))

	// Idempotent on claimed tickets and a no-op for holders without one.
	require.NoError(t, l.CheckInTicket(carol, "ev", alice))
	assert.Equal(t, domain.TicketClaimed, l.GetTicketStatus("ev", alice))
	require.NoError(t, l.CheckInTicket(carol, "ev", bob))
	assert.Equal(t, domain.TicketNone, l.GetTicketStatus("ev", bob))

	ev, err := l.GetEventData("ev")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), ev.TicketQuantityIssued)
	requireConsistent(t, l)
}

func TestLedger_ClaimBalance(t *testing.T) {
	ctx := context.Background()
	l, gw := newTestLedger(t)
	_, err := l.CreateEvent(owner, "ev", 40, 3)
	require.NoError(t, err)
	for _, buyer := range []domain.Address{alice, bob, carol} {
		gw.spendable[buyer] = 10000
		require.NoError(t, l.BuyTicketWithAsset(ctx, buyer, "ev", buyer))
	}
	require.Equal(t, uint64(120), l.GetBalance(owner, dai))
	l.TakeNotifications()
	gw.moves = nil

	_, err = l.ClaimBalance(ctx, alice, dai)
	require.ErrorIs(t, err, domain.ErrZeroBalance)
	_, err = l.ClaimBalance(ctx, owner, "USDC")
	require.ErrorIs(t, err, domain.ErrZeroBalance)

	amount, err := l.ClaimBalance(ctx, owner, dai)
	require.NoError(t, err)
	assert.Equal(t, uint64(120), amount)
	assert.Equal(t, uint64(0), l.GetBalance(owner, dai))
	assert.Equal(t, []move{{from: custody, to: owner, amount: 120}}, gw.moves)
	assert.Equal(t, []domain.Notification{{BalanceWithdrawn: &domain.BalanceWithdrawn{
		Receiver: owner, Asset: dai, Amount: 120,
	}}}, l.TakeNotifications())

	_, err = l.ClaimBalance(ctx, owner, dai)
	require.ErrorIs(t, err, domain.ErrZeroBalance)
}

func TestLedger_ClaimBalance_TransferFailureRestoresBalance(t *testing.T) {
	ctx := context.Background()
	l, gw := newTestLedger(t)
	_, err := l.CreateEvent(owner, "ev", 40, 3)
	require.NoError(t, err)
	gw.spendable[alice] = 40
	require.NoError(t, l.BuyTicketWithAsset(ctx, alice, "ev", alice))
	l.TakeNotifications()

	gw.moveErr = errors.New("paused")
	_, err = l.ClaimBalance(ctx, owner, dai)
	require.ErrorIs(t, err, domain.ErrAssetTransferFailed)
	assert.Contains(t, err.Error(), "paused")
	assert.Equal(t, uint64(40), l.GetBalance(owner, dai))
	assert.Empty(t, l.TakeNotifications())
}

func TestLedger_ClaimBalance_ReentrantClaimRejected(t *testing.T) {
	ctx := context.Background()
	l, gw := newTestLedger(t)
	_, err := l.CreateEvent(owner, "ev", 40, 3)
	require.NoError(t, err)
	gw.spendable[alice] = 40
	require.NoError(t, l.BuyTicketWithAsset(ctx, alice, "ev", alice))
	l.TakeNotifications()

	var nestedErr error
	gw.onMove = func(ctx context.Context, m move) error {
		gw.onMove = nil
		assert.Equal(t, uint64(0), l.GetBalance(owner, dai))
		_, nestedErr = l.ClaimBalance(ctx, owner, dai)
		return nil
	}

	amount, err := l.ClaimBalance(ctx, owner, dai)
	require.NoError(t, err)
	require.ErrorIs(t, nestedErr, domain.ErrReentrantCall)
	assert.Equal(t, uint64(40), amount)
	assert.Equal(t, []move{{from: alice, to: custody, amount: 40}, {from: custody, to: owner, amount: 40}}, gw.moves)
	assert.Len(t, l.TakeNotifications(), 1)
}

func TestLedger_ClaimInsideFailedPurchaseCannotDoubleWithdraw(t *testing.T) {
	ctx := context.Background()
	l, gw := newTestLedger(t)
	_, err := l.CreateEvent(owner, "ev", 40, 3)
	require.NoError(t, err)
	gw.spendable[alice] = 40
	gw.spendable[bob] = 40
	require.NoError(t, l.BuyTicketWithAsset(ctx, alice, "ev", alice))
	l.TakeNotifications()

	// Bob's payment pull tries to withdraw the owner's balance, which now
	// includes bob's price, and then reverts.
	var nestedAmount uint64
	var nestedErr error
	gw.onMove = func(ctx context.Context, m move) error {
		if m.from != bob {
			return nil
		}
		assert.Equal(t, uint64(80), l.GetBalance(owner, dai))
		nestedAmount, nestedErr = l.ClaimBalance(ctx, owner, dai)
		return errors.New("pull reverted")
	}

	err = l.BuyTicketWithAsset(ctx, bob, "ev", bob)
	require.ErrorIs(t, err, domain.ErrAssetTransferFailed)
	require.ErrorIs(t, nestedErr, domain.ErrReentrantCall)
	assert.Zero(t, nestedAmount)

	assert.Equal(t, uint64(40), l.GetBalance(owner, dai))
	assert.Equal(t, domain.TicketNone, l.GetTicketStatus("ev", bob))
	assert.Equal(t, []move{{from: alice, to: custody, amount: 40}}, gw.moves)
	assert.Empty(t, l.TakeNotifications())
	requireConsistent(t, l)

	// The owner can still withdraw exactly what was earned.
	gw.onMove = nil
	amount, err := l.ClaimBalance(ctx, owner, dai)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), amount)
}

func TestLedger_PurchaseInsideClaimRejected(t *testing.T) {
	ctx := context.Background()
	l, gw := newTestLedger(t)
	_, err := l.CreateEvent(owner, "ev", 40, 3)
	require.NoError(t, err)
	gw.spendable[alice] = 40
	gw.spendable[bob] = 40
	require.NoError(t, l.BuyTicketWithAsset(ctx, alice, "ev", alice))
	l.TakeNotifications()

	// The payout callback tries to buy a ticket, then the payout reverts.
	var nestedErr error
	gw.onMove = func(ctx context.Context, m move) error {
		gw.onMove = nil
		nestedErr = l.BuyTicketWithAsset(ctx, bob, "ev", bob)
		return errors.New("payout reverted")
	}

	_, err = l.ClaimBalance(ctx, owner, dai)
	require.ErrorIs(t, err, domain.ErrAssetTransferFailed)
	require.ErrorIs(t, nestedErr, domain.ErrReentrantCall)

	assert.Equal(t, uint64(40), l.GetBalance(owner, dai))
	assert.Equal(t, domain.TicketNone, l.GetTicketStatus("ev", bob))
	assert.Equal(t, []move{{from: alice, to: custody, amount: 40}}, gw.moves)
	assert.Empty(t, l.TakeNotifications())
	requireConsistent(t, l)
}

func TestLedger_ReentrantMutationsRollBackWithOuterFailure(t *testing.T) {
	ctx := context.Background()
	l, gw := newTestLedger(t)
	_, err := l.CreateEvent(owner, "ev", 40, 3)
	require.NoError(t, err)
	gw.spendable[alice] = 100
	l.TakeNotifications()

	// The gateway re-enters: it moves the just-issued ticket, registers an
	// event, then fails the payment.
	gw.onMove = func(ctx context.Context, m move) error {
		gw.onMove = nil
		assert.Equal(t, domain.TicketUnclaimed, l.GetTicketStatus("ev", alice))
		require.NoError(t, l.TransferUnclaimedTicket(alice, "ev", bob))
		_, err := l.CreateEvent(bob, "side", 1, 1)
		require.NoError(t, err)
		return errors.New("reverted")
	}

	err = l.BuyTicketWithAsset(ctx, alice, "ev", alice)
	require.ErrorIs(t, err, domain.ErrAssetTransferFailed)

	assert.Equal(t, domain.TicketNone, l.GetTicketStatus("ev", alice))
	assert.Equal(t, domain.TicketNone, l.GetTicketStatus("ev", bob))
	assert.False(t, l.EventExists("side"))
	assert.Equal(t, []string{"ev"}, l.EventNames())
	assert.Equal(t, uint64(0), l.GetBalance(owner, dai))
	assert.Empty(t, l.TakeNotifications())
	requireConsistent(t, l)
}

func TestLedger_NestedFailureKeepsOuterEffects(t *testing.T) {
	ctx := context.Background()
	l, gw := newTestLedger(t)
	_, err := l.CreateEvent(owner, "ev", 40, 1)
	require.NoError(t, err)
	gw.spendable[alice] = 100

	// A nested issue sees the outer purchase's ticket already counted.
	gw.onMove = func(ctx context.Context, m move) error {
		gw.onMove = nil
		err := l.OwnerIssueTicket(owner, "ev", bob)
		require.ErrorIs(t, err, domain.ErrSoldOut)
		return nil
	}
	require.NoError(t, l.BuyTicketWithAsset(ctx, alice, "ev", alice))

	assert.Equal(t, domain.TicketUnclaimed, l.GetTicketStatus("ev", alice))
	assert.Equal(t, domain.TicketNone, l.GetTicketStatus("ev", bob))
	assert.Equal(t, uint64(40), l.GetBalance(owner, dai))
	requireConsistent(t, l)
}

func TestLedger_PanicRollsBack(t *testing.T) {
	ctx := context.Background()
	l, gw := newTestLedger(t)
	_, err := l.CreateEvent(owner, "ev", 40, 3)
	require.NoError(t, err)
	gw.spendable[alice] = 100
	gw.onMove = func(ctx context.Context, m move) error { panic("gateway bug") }

	require.Panics(t, func() { _ = l.BuyTicketWithAsset(ctx, alice, "ev", alice) })
	assert.Equal(t, domain.TicketNone, l.GetTicketStatus("ev", alice))
	assert.Equal(t, uint64(0), l.GetBalance(owner, dai))

	gw.onMove = nil
	require.NoError(t, l.BuyTicketWithAsset(ctx, alice, "ev", alice))
	requireConsistent(t, l)
}

func TestLedger_IssueBurnRoundTrip(t *testing.T) {
	l, _ := newTestLedger(t)
	_, err := l.CreateEvent(owner, "ev", 0, 5)
	require.NoError(t, err)
	require.NoError(t, l.OwnerIssueTicket(owner, "ev", bob))

	for _, holder := range []domain.Address{alice, carol, "0xdave"} {
		before, err := l.GetEventData("ev")
		require.NoError(t, err)
		require.NoError(t, l.OwnerIssueTicket(owner, "ev", holder))
		require.NoError(t, l.BurnUnclaimedTicket(holder, "ev"))
		after, err := l.GetEventData("ev")
		require.NoError(t, err)
		assert.Equal(t, before.TicketQuantityIssued, after.TicketQuantityIssued)
		assert.Equal(t, domain.TicketNone, l.GetTicketStatus("ev", holder))
	}
	requireConsistent(t, l)
}
