// Package store persists users, profiles, metrics, recommendations, tracked
// activities and chat sessions in MongoDB.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Collection names
const (
	UsersCollection           = "users"
	ProfilesCollection        = "profiles"
	HealthMetricsCollection   = "health_metrics"
	RecommendationsCollection = "recommendations"
	ActivitiesCollection      = "activities"
	ChatSessionsCollection    = "chat_sessions"
)

// Timeout bounds every database call.
const Timeout = 10 * time.Second

var (
	// ErrNotFound is returned when a requested document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID is returned for user ids that are not valid ObjectID hex.
	ErrInvalidID = errors.New("invalid id")
	// ErrDuplicate is returned when a unique index rejects a write.
	ErrDuplicate = errors.New("duplicate document")
)

// Mongo is the MongoDB-backed document store.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

// Connect opens a client, pings the server and returns the store.
func Connect(ctx context.Context, uri, dbName string, logger *zap.Logger) (*Mongo, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("connected to MongoDB", zap.String("database", dbName))
	return &Mongo{client: client, db: client.Database(dbName), logger: logger}, nil
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()
	return m.client.Disconnect(ctx)
}

func (m *Mongo) collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// EnsureIndexes creates the indexes the store relies on. Safe to call on
// every start.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	unique := options.Index().SetUnique(true)
	specs := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		ProfilesCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique},
		},
		HealthMetricsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique},
		},
		RecommendationsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		ActivitiesCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}, Options: unique},
		},
		ChatSessionsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}

	for coll, models := range specs {
		if _, err := m.collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", coll, err)
		}
	}
	return nil
}

// ParseID converts a hex user id into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// findOne decodes a single document, mapping a missing document to
// ErrNotFound.
func (m *Mongo) findOne(ctx context.Context, coll string, filter interface{}, out interface{}, opts ...*options.FindOneOptions) error {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	err := m.collection(coll).FindOne(ctx, filter, opts...).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find in %s: %w", coll, err)
	}
	return nil
}

// upsertByFilter writes fields with $set, stamps created_at only on insert and
// decodes the resulting document into out.
func (m *Mongo) upsertByFilter(ctx context.Context, coll string, filter bson.M, fields bson.M, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	now := time.Now()
	fields["updated_at"] = now
	delete(fields, "_id")
	delete(fields, "created_at")

	update := bson.M{
		"$set":         fields,
		"$setOnInsert": bson.M{"created_at": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	if err := m.collection(coll).FindOneAndUpdate(ctx, filter, update, opts).Decode(out); err != nil {
		return fmt.Errorf("upsert into %s: %w", coll, err)
	}
	return nil
}

// toFields marshals a document struct into a bson.M usable as a $set payload.
func toFields(doc interface{}) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
