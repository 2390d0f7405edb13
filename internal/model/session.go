package model

// Session pairs the opaque API credential with the profile returned at
// login. The token is never inspected.
type Session struct {
	Token string
	User  *User
}

// Valid reports whether the session looks authenticated: a token and a
// parsed user are both present.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User != nil
}
