package services

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrValidation marks failures that are the caller's fault; handlers map it
// to 400, as opposed to repositories.ErrNotFound (404) and everything else
// (500).
var ErrValidation = errors.New("validation error")

func validationErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, validationErrorf("invalid id %q", id)
	}
	return oid, nil
}
