package mongodb

import (
	"context"
	"regexp"
	"time"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// bookRepository implements repository.BookRepository on the 'books' collection.
type bookRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *mongo.Database) repository.BookRepository {
	return &bookRepository{
		coll: db.Collection(model.BooksCollection),
		now:  storeNow,
	}
}

// Find returns one page of books in the store's natural order.
func (repo *bookRepository) Find(ctx context.Context, query repository.BookQuery) ([]*entity.Book, error) {
	opts := options.Find().
		SetLimit(query.Limit).
		SetSkip(query.Offset)

	cursor, err := repo.coll.Find(ctx, buildBookFilter(query), opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find books")
	}

	var models []model.BookModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode books")
	}

	books := make([]*entity.Book, 0, len(models))
	for i := range models {
		books = append(books, toBookDomain(&models[i]))
	}

	return books, nil
}

// Create inserts the book and fills in the generated ID and timestamps.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM, err := fromBookDomain(book)
	if err != nil {
		return err
	}

	now := repo.now()
	bookM.ID = primitive.NilObjectID
	bookM.CreatedAt = now
	bookM.UpdatedAt = now

	res, err := repo.coll.InsertOne(ctx, bookM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	book.ID = oid.Hex()
	book.CreatedAt = now
	book.UpdatedAt = now

	return nil
}

// FindByID retrieves a single book.
func (repo *bookRepository) FindByID(ctx context.Context, id string) (*entity.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrBookNotFound
	}

	return decodeBook(repo.coll.FindOne(ctx, bson.M{"_id": oid}), "failed to find book by id")
}

// UpdateByID sets the patched fields and returns the updated document.
func (repo *bookRepository) UpdateByID(ctx context.Context, id string, patch *entity.BookPatch) (*entity.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrBookNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": buildBookUpdate(patch, repo.now())}

	return decodeBook(repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts), "failed to update book")
}

// DeleteByID removes the book and returns the document as it was before deletion.
func (repo *bookRepository) DeleteByID(ctx context.Context, id string) (*entity.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrBookNotFound
	}

	return decodeBook(repo.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}), "failed to delete book")
}

func decodeBook(res *mongo.SingleResult, details string) (*entity.Book, error) {
	var bookM model.BookModel
	if err := res.Decode(&bookM); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrBookNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return toBookDomain(&bookM), nil
}

// buildBookFilter matches the keyword literally anywhere in the title, ignoring case.
func buildBookFilter(query repository.BookQuery) bson.M {
	if query.Keyword == "" {
		return bson.M{}
	}

	return bson.M{
		"title": bson.M{
			"$regex":   regexp.QuoteMeta(query.Keyword),
			"$options": "i",
		},
	}
}

func buildBookUpdate(patch *entity.BookPatch, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if patch == nil {
		return set
	}

	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Author != nil {
		set["author"] = *patch.Author
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Category != nil {
		set["category"] = patch.Category.String()
	}

	return set
}

func toBookDomain(m *model.BookModel) *entity.Book {
	return &entity.Book{
		ID:          m.ID.Hex(),
		User:        m.User.Hex(),
		Title:       m.Title,
		Author:      m.Author,
		Description: m.Description,
		Price:       m.Price,
		Category:    entity.Category(m.Category),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromBookDomain(b *entity.Book) (*model.BookModel, error) {
	owner, err := primitive.ObjectIDFromHex(b.User)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid book owner id %q", b.User)
	}

	return &model.BookModel{
		User:        owner,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Price:       b.Price,
		Category:    b.Category.String(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}, nil
}
