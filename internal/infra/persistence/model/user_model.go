package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UsersCollection is the collection holding user documents.
const UsersCollection = "users"

// UserModel mirrors a document in the 'users' collection. MongoDB generates the ObjectID.
type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}
