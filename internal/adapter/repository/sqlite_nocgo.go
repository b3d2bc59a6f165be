//go:build !cgo

package repository

// The sqlite driver needs cgo; without it there are no sqlite errors to classify.
func sqliteConstraint(error) error { return nil }
