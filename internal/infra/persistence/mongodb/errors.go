package mongodb

import (
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

// isDuplicateKeyError reports unique index violations (server code 11000).
func isDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
