package models

// Session is the authenticated identity plus the bearer token issued by the
// backend. It exists in memory only as a projection of the persisted
// token/user pair; the key/value store is the source of truth across
// restarts.
type Session struct {
	Token string
	User  User
}
