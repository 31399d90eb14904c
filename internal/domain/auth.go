package domain

import "time"

// TokenIssuer issues bearer tokens naming an address as the subject.
type TokenIssuer interface {
	Issue(subject Address, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a bearer token and returns the authenticated address.
type TokenVerifier interface {
	Verify(token string) (Address, error)
}
