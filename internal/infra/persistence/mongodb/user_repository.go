package mongodb

import (
	"context"
	"time"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// userRepository implements repository.UserRepository on the 'users' collection.
type userRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(model.UsersCollection),
		now:  storeNow,
	}
}

// Create inserts the user and relies on the unique email index for duplicates.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := repo.now()
	userM := fromUserDomain(user)
	userM.ID = primitive.NilObjectID
	userM.CreatedAt = now
	userM.UpdatedAt = now

	res, err := repo.coll.InsertOne(ctx, userM)
	if err != nil {
		if isDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	user.ID = oid.Hex()
	user.CreatedAt = now
	user.UpdatedAt = now

	return nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"email": email}, "failed to find user by email")
}

// FindByID retrieves a single user by id. Malformed ids cannot match any user.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, bson.M{"_id": oid}, "failed to find user by id")
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M, details string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&userM); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return toUserDomain(&userM), nil
}

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:        m.ID.Hex(),
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	m := &model.UserModel{
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(u.ID); err == nil {
		m.ID = oid
	}

	return m
}

// storeNow matches MongoDB's millisecond date precision.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
