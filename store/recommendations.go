package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/raushankrgupta/ayush-ai/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MaxPageSize caps history page sizes.
const MaxPageSize = 50

// AppendRecommendation inserts a history entry. Entries are never updated.
func (m *Mongo) AppendRecommendation(ctx context.Context, doc *models.RecommendationDocument) error {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}
	result, err := m.collection(RecommendationsCollection).InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert recommendation: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return nil
}

// GetLatestRecommendation returns the newest entry, or nil with no error when
// the user has none yet.
func (m *Mongo) GetLatestRecommendation(ctx context.Context, userID string) (*models.RecommendationDocument, error) {
	oid, err := ParseID(userID)
	if err != nil {
		return nil, err
	}
	var doc models.RecommendationDocument
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	err = m.findOne(ctx, RecommendationsCollection, bson.M{"user_id": oid}, &doc, opts)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListRecommendations returns one page of history, newest first, and the
// total number of entries.
func (m *Mongo) ListRecommendations(ctx context.Context, userID string, page, limit int) ([]models.RecommendationDocument, int64, error) {
	oid, err := ParseID(userID)
	if err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MaxPageSize {
		limit = 10
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	filter := bson.M{"user_id": oid}
	coll := m.collection(RecommendationsCollection)

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count recommendations: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find recommendations: %w", err)
	}
	defer cursor.Close(ctx)

	docs := []models.RecommendationDocument{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode recommendations: %w", err)
	}
	return docs, total, nil
}
