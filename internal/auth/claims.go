package auth

// UserClaims is what the auth middleware makes available to handlers.
type UserClaims interface {
	UserID() string
	DisplayName() string
	Source() string
}

type JWTClaims struct {
	Subject string
	Name    string
}

func (c *JWTClaims) UserID() string      { return c.Subject }
func (c *JWTClaims) DisplayName() string { return c.Name }
func (c *JWTClaims) Source() string      { return "JWT" }
