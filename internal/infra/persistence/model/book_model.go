package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BooksCollection is the collection holding book documents.
const BooksCollection = "books"

// BookModel mirrors a document in the 'books' collection. User references users._id.
type BookModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	User        primitive.ObjectID `bson:"user"`
	Title       string             `bson:"title"`
	Author      string             `bson:"author"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}
