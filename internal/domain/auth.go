package domain

import "time"

// TokenIssuer creates signed access tokens for operators allowed to send invitations.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// TokenVerifier validates an access token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}
