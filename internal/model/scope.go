package model

// Scope identifies the authenticated caller of a server use case.
type Scope struct {
	UserID string
	Email  string
}
