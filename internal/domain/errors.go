package domain

import "errors"

// Sentinel errors for ticket sales operations. Every one of them aborts the
// operation that returned it with no state change.
var (
	ErrNotFound            = errors.New("event does not exist")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrAlreadyExists       = errors.New("event already exists")
	ErrInvalidQuantity     = errors.New("ticket quantity must be greater than zero")
	ErrAlreadyChecker      = errors.New("address is already a checker")
	ErrNotAChecker         = errors.New("address is already not a checker")
	ErrAlreadyHasTicket    = errors.New("address already has ticket")
	ErrNoUnclaimedTicket   = errors.New("caller does not have an unclaimed ticket for this event")
	ErrSoldOut             = errors.New("no more tickets available")
	ErrInsufficientFunds   = errors.New("does not have enough funds")
	ErrZeroBalance         = errors.New("no balance to claim")
	ErrAssetTransferFailed = errors.New("asset transfer failed")
	ErrInvalidInput        = errors.New("invalid input")
	ErrReentrantCall       = errors.New("operation cannot run while an asset transfer is in progress")
)
