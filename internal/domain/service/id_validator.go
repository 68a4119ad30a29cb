package service

// IDValidator reports whether a string is a well-formed store identifier.
// Format checks happen before any store access.
type IDValidator interface {
	Valid(id string) bool
}
