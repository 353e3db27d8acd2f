package ports

// TokenClaims are the identity fields embedded in a bearer token.
type TokenClaims struct {
	UserID string
	Email  string
	Role   string
}

// TokenService issues and verifies signed, expiring bearer tokens.
// Verify fails with domain.ErrTokenExpired for expired tokens and
// domain.ErrTokenInvalid for anything malformed or badly signed.
type TokenService interface {
	Issue(claims TokenClaims) (string, error)
	Verify(token string) (*TokenClaims, error)
}
