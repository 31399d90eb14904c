package asset

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"eventticketing/internal/domain"
)

// Sentinel errors returned by CustodialToken.
var (
	ErrInsufficientBalance   = errors.New("transfer amount exceeds balance")
	ErrInsufficientAllowance = errors.New("transfer amount exceeds allowance")
)

// CustodialToken is an in-process fungible token with approve/transferFrom
// semantics. The spender is the ledger's custody address: it pulls funds from
// holders up to what they approved and pays out of its own balance.
type CustodialToken struct {
	mu         sync.Mutex
	spender    domain.Address
	balances   map[domain.Address]uint64
	allowances map[domain.Address]map[domain.Address]uint64
}

// NewCustodialToken returns an empty token whose transfers are made by
// spender.
func NewCustodialToken(spender domain.Address) *CustodialToken {
	return &CustodialToken{
		spender:    spender,
		balances:   make(map[domain.Address]uint64),
		allowances: make(map[domain.Address]map[domain.Address]uint64),
	}
}

// Mint creates amount units owned by to.
func (t *CustodialToken) Mint(to domain.Address, amount uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.balances[to] += amount
}

// Approve lets spender pull up to amount units from holder.
func (t *CustodialToken) Approve(holder, spender domain.Address, amount uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	a, ok := t.allowances[holder]
	if !ok {
		a = make(map[domain.Address]uint64)
		t.allowances[holder] = a
	}
	a[spender] = amount
}

// BalanceOf returns addr's token balance.
func (t *CustodialToken) BalanceOf(addr domain.Address) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.balances[addr]
}

// Allowance returns how much spender may still pull from holder.
func (t *CustodialToken) Allowance(holder, spender domain.Address) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.allowances[holder][spender]
}

// SpendableBalance returns the smaller of addr's balance and its allowance to
// the custody spender.
func (t *CustodialToken) SpendableBalance(_ context.Context, addr domain.Address) (uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return min(t.balances[addr], t.allowances[addr][t.spender]), nil
}

// MoveFunds transfers amount from one address to another on behalf of the
// spender. Moves out of any address other than the spender consume allowance.
func (t *CustodialToken) MoveFunds(_ context.Context, from, to domain.Address, amount uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.balances[from] < amount {
		return fmt.Errorf("move %d from %s: %w", amount, from, ErrInsufficientBalance)
	}
	if from != t.spender && amount > 0 {
		allowed := t.allowances[from][t.spender]
		if allowed < amount {
			return fmt.Errorf("move %d from %s: %w", amount, from, ErrInsufficientAllowance)
		}
		t.allowances[from][t.spender] = allowed - amount
	}
	t.balances[from] -= amount
	t.balances[to] += amount
	return nil
}
