package mongodb

import (
	"bookstore/internal/domain/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type objectIDValidator struct{}

// NewIDValidator returns a validator accepting 24-character hex ObjectIDs.
func NewIDValidator() service.IDValidator {
	return objectIDValidator{}
}

func (objectIDValidator) Valid(id string) bool {
	return primitive.IsValidObjectID(id)
}
