package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const usersCollection = "users"

// userDoc is the Mongo representation of a User. The id is stored as the
// uuid string so documents stay readable in the shell.
type userDoc struct {
	ID        string    `bson:"_id"`
	Username  string    `bson:"username"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password,omitempty"`
	Gender    string    `bson:"gender"`
	DOB       string    `bson:"dob"`
	CreatedAt time.Time `bson:"created_at"`
}

func (d userDoc) toUser() (*User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("malformed user id %q: %w", d.ID, err)
	}
	return &User{
		ID:           id,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.Password,
		Gender:       d.Gender,
		DOB:          d.DOB,
		CreatedAt:    d.CreatedAt,
	}, nil
}

// MongoStorage implements Storage on a MongoDB users collection.
type MongoStorage struct {
	users *mongo.Collection
}

// NewMongoStorage creates a credential store on the given database handle.
func NewMongoStorage(db *mongo.Database) *MongoStorage {
	return &MongoStorage{users: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique email index. Email uniqueness is a store
// invariant, not an application-level pre-check: Insert reports the conflict
// atomically via the duplicate-key error.
func (s *MongoStorage) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create email index: %w", err)
	}
	return nil
}

func (s *MongoStorage) FindByEmail(ctx context.Context, email string) (*User, error) {
	var doc userDoc
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return doc.toUser()
}

func (s *MongoStorage) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var doc userDoc
	err := s.users.FindOne(ctx, bson.M{"_id": id.String()},
		options.FindOne().SetProjection(bson.M{"password": 0}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return doc.toUser()
}

func (s *MongoStorage) GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error) {
	var doc userDoc
	err := s.users.FindOne(ctx, bson.M{"_id": id.String()},
		options.FindOne().SetProjection(bson.M{"password": 1}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to get password hash: %w", err)
	}
	return doc.Password, nil
}

func (s *MongoStorage) Insert(ctx context.Context, u *User) error {
	doc := userDoc{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.PasswordHash,
		Gender:    u.Gender,
		DOB:       u.DOB,
		CreatedAt: u.CreatedAt,
	}
	if _, err := s.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailAlreadyRegistered
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *MongoStorage) UpdateByID(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*User, error) {
	set := bson.M{}
	if update.Username != nil {
		set["username"] = *update.Username
	}
	if update.Gender != nil {
		set["gender"] = *update.Gender
	}
	if update.DOB != nil {
		set["dob"] = *update.DOB
	}
	if len(set) == 0 {
		return s.FindByID(ctx, id)
	}

	var doc userDoc
	err := s.users.FindOneAndUpdate(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$set": set},
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(bson.M{"password": 0}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return doc.toUser()
}

func (s *MongoStorage) UpdatePasswordByID(ctx context.Context, id uuid.UUID, hash string) error {
	res, err := s.users.UpdateOne(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$set": bson.M{"password": hash}},
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *MongoStorage) DeleteByID(ctx context.Context, id uuid.UUID) error {
	res, err := s.users.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

var _ Storage = (*MongoStorage)(nil)
