package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/raushankrgupta/ayush-ai/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateUser inserts a new user. Emails are stored lower-cased; a second
// account with the same email yields ErrDuplicate.
func (m *Mongo) CreateUser(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	now := time.Now()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := m.collection(UsersCollection).InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// UpsertOAuthUser creates or refreshes a user signing in with an external
// provider and links the provider account.
func (m *Mongo) UpsertOAuthUser(ctx context.Context, email, name, image string, account models.ProviderAccount) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	now := time.Now()
	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	update := bson.M{
		"$set": bson.M{
			"name":       name,
			"image":      image,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"provider":   account.Provider,
			"created_at": now,
		},
		"$addToSet": bson.M{"accounts": account},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var user models.User
	if err := m.collection(UsersCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&user); err != nil {
		return nil, fmt.Errorf("upsert oauth user: %w", err)
	}
	return &user, nil
}

func (m *Mongo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	if err := m.findOne(ctx, UsersCollection, filter, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *Mongo) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	oid, err := ParseID(userID)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := m.findOne(ctx, UsersCollection, bson.M{"_id": oid}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
