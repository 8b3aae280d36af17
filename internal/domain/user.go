package domain

// User is the authenticated identity for the current client session.
type User struct {
	ID    string
	Email string
	Name  string
}
