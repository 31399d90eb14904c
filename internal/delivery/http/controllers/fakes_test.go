package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"eventticketing/internal/delivery/http/helpers"
	"eventticketing/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// salesCall captures the arguments of the last TicketSalesService call.
type salesCall struct {
	op     string
	caller domain.Address
	name   string
	target domain.Address
	asset  domain.AssetID
	price  uint64
	qty    uint64
}

// fakeSalesService implements domain.TicketSalesService for handler tests.
type fakeSalesService struct {
	err        error
	queryErr   error
	event      *domain.Event
	isChecker  bool
	status     domain.TicketStatus
	balance    uint64
	claimed    uint64
	calls      []salesCall
	lastCall   salesCall
	queryCalls int
}

func (f *fakeSalesService) record(c salesCall) error {
	f.calls = append(f.calls, c)
	f.lastCall = c
	return f.err
}

func (f *fakeSalesService) CreateEvent(_ context.Context, caller domain.Address, name string, price, quantity uint64) (*domain.Event, error) {
	if err := f.record(salesCall{op: "create", caller: caller, name: name, price: price, qty: quantity}); err != nil {
		return nil, err
	}
	return domain.NewEvent(name, caller, price, quantity), nil
}

func (f *fakeSalesService) GetEventData(_ context.Context, name string) (*domain.Event, error) {
	if err := f.record(salesCall{op: "get", name: name}); err != nil {
		return nil, err
	}
	return f.event, nil
}

func (f *fakeSalesService) EventExists(_ context.Context, name string) (bool, error) {
	if err := f.record(salesCall{op: "exists", name: name}); err != nil {
		return false, err
	}
	return f.event != nil, nil
}

func (f *fakeSalesService) AddChecker(_ context.Context, caller domain.Address, name string, checker domain.Address) error {
	return f.record(salesCall{op: "add_checker", caller: caller, name: name, target: checker})
}

func (f *fakeSalesService) RemoveChecker(_ context.Context, caller domain.Address, name string, checker domain.Address) error {
	return f.record(salesCall{op: "remove_checker", caller: caller, name: name, target: checker})
}

func (f *fakeSalesService) GetCheckerStatus(_ context.Context, name string, addr domain.Address) (bool, error) {
	if err := f.record(salesCall{op: "checker_status", name: name, target: addr}); err != nil {
		return false, err
	}
	return f.isChecker, nil
}

func (f *fakeSalesService) OwnerIssueTicket(_ context.Context, caller domain.Address, name string, receiver domain.Address) error {
	return f.record(salesCall{op: "issue", caller: caller, name: name, target: receiver})
}

func (f *fakeSalesService) BuyTicketWithAsset(_ context.Context, caller domain.Address, name string, receiver domain.Address) error {
	return f.record(salesCall{op: "buy", caller: caller, name: name, target: receiver})
}

func (f *fakeSalesService) TransferUnclaimedTicket(_ context.Context, caller domain.Address, name string, to domain.Address) error {
	return f.record(salesCall{op: "transfer", caller: caller, name: name, target: to})
}

func (f *fakeSalesService) BurnUnclaimedTicket(_ context.Context, caller domain.Address, name string) error {
	return f.record(salesCall{op: "burn", caller: caller, name: name})
}

func (f *fakeSalesService) CheckInTicket(_ context.Context, caller domain.Address, name string, holder domain.Address) error {
	return f.record(salesCall{op: "check_in", caller: caller, name: name, target: holder})
}

// GetTicketStatus reports queryErr rather than err so check-in tests can fail
// the follow-up query alone.
func (f *fakeSalesService) GetTicketStatus(_ context.Context, name string, holder domain.Address) (domain.TicketStatus, error) {
	f.queryCalls++
	if f.queryErr != nil {
		return domain.TicketNone, f.queryErr
	}
	return f.status, nil
}

func (f *fakeSalesService) ClaimBalance(_ context.Context, caller domain.Address, asset domain.AssetID) (uint64, error) {
	if err := f.record(salesCall{op: "claim", caller: caller, asset: asset}); err != nil {
		return 0, err
	}
	return f.claimed, nil
}

func (f *fakeSalesService) GetBalance(_ context.Context, owner domain.Address, asset domain.AssetID) (uint64, error) {
	if err := f.record(salesCall{op: "balance", target: owner, asset: asset}); err != nil {
		return 0, err
	}
	return f.balance, nil
}

// decodeEnvelope decodes the API envelope with Data decoded into data (if non-nil).
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) *helpers.APIError {
	t.Helper()
	var raw struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw))
	if data != nil && raw.Error == nil {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return raw.Error
}
