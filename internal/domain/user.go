package domain

// UserProfile describes the logged-in demo user. There is only ever the one
// hard-coded account; this is a mock, not an account system.
type UserProfile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AuthSession is the binary authentication state: anonymous, or authenticated
// with a profile. No tokens, no expiry.
type AuthSession struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *UserProfile `json:"user,omitempty"`
}
