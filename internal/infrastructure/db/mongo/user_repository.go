package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/worldroam/countries-api/internal/core/domain"
)

const usersCollection = "users"

// MongoUserRepository persists user accounts in the users collection.
type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Favorites    []string           `bson:"favorites"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

// EnsureIndexes creates the unique index on email. Registration relies on
// this constraint: two concurrent registrations with the same address race
// inside MongoDB, and the loser gets a duplicate-key error, never a second
// account.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure users indexes: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := mongoUser{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Favorites:    user.Favorites,
		CreatedAt:    user.CreatedAt.Unix(),
		UpdatedAt:    user.UpdatedAt.Unix(),
	}
	if doc.Favorites == nil {
		doc.Favorites = []string{}
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	created.Favorites = doc.Favorites
	return &created, nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return mu.toDomain(), nil
}

// AddFavorite appends code in a single conditional update: the filter
// requires code to be absent, so concurrent adds of the same code cannot
// both match and the set invariant holds without any application-level lock.
func (r *MongoUserRepository) AddFavorite(ctx context.Context, id, code string) ([]string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	filter := bson.M{"_id": oid, "favorites": bson.M{"$ne": code}}
	update := bson.M{
		"$push": bson.M{"favorites": code},
		"$set":  bson.M{"updated_at": time.Now().UTC().Unix()},
	}

	favorites, err := r.findOneAndUpdateFavorites(ctx, filter, update)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Filter mismatch: either the code is already present or the
			// user is gone. Disambiguate with a lookup.
			if _, findErr := r.FindByID(ctx, id); findErr != nil {
				return nil, findErr
			}
			return nil, domain.ErrAlreadyFavorite
		}
		return nil, fmt.Errorf("add favorite: %w", err)
	}
	return favorites, nil
}

// RemoveFavorite pulls all occurrences of code, conditional on membership.
func (r *MongoUserRepository) RemoveFavorite(ctx context.Context, id, code string) ([]string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	filter := bson.M{"_id": oid, "favorites": code}
	update := bson.M{
		"$pull": bson.M{"favorites": code},
		"$set":  bson.M{"updated_at": time.Now().UTC().Unix()},
	}

	favorites, err := r.findOneAndUpdateFavorites(ctx, filter, update)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			if _, findErr := r.FindByID(ctx, id); findErr != nil {
				return nil, findErr
			}
			return nil, domain.ErrNotFavorite
		}
		return nil, fmt.Errorf("remove favorite: %w", err)
	}
	return favorites, nil
}

func (r *MongoUserRepository) findOneAndUpdateFavorites(ctx context.Context, filter, update bson.M) ([]string, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mu mongoUser
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&mu); err != nil {
		return nil, err
	}
	if mu.Favorites == nil {
		return []string{}, nil
	}
	return mu.Favorites, nil
}

func (mu *mongoUser) toDomain() *domain.User {
	favorites := mu.Favorites
	if favorites == nil {
		favorites = []string{}
	}
	return &domain.User{
		ID:           mu.ID.Hex(),
		Username:     mu.Username,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		Favorites:    favorites,
		CreatedAt:    unixToTime(mu.CreatedAt),
		UpdatedAt:    unixToTime(mu.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
