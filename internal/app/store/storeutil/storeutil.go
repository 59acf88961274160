// Package storeutil holds helpers shared by the collection stores.
package storeutil

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors returned by stores. Handlers map these onto HTTP statuses.
var (
	// ErrNotFound means the identifier did not resolve to a document.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicate means a unique field (slug, email) already holds the value.
	ErrDuplicate = errors.New("duplicate unique field")
)

// IsDuplicateKeyErr reports whether err is a unique-index violation.
// MongoDB and DocumentDB surface E11000 in different error shapes.
func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 { // E11000 duplicate key error index
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "E11000") || strings.Contains(strings.ToLower(s), "duplicate key")
}
