// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// depending on driver error types.
package repository

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a single-document lookup or a mutation
// targeting one document matches nothing.  Fetch handlers translate it
// into a null result rather than an error response.
var ErrNotFound = errors.New("not found")

// ErrInvalidID is returned when a path identifier cannot be converted to
// an ObjectID.  Handlers translate this into an HTTP 400 response.
var ErrInvalidID = errors.New("invalid identifier")

// ParseID converts a 24-character hex string into an ObjectID.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(hex))
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}
