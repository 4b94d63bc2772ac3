package store

import (
	"context"

	"github.com/raushankrgupta/ayush-ai/models"
	"go.mongodb.org/mongo-driver/bson"
)

// UpsertProfile replaces the user's profile, creating it on first
// submission. Last write wins.
func (m *Mongo) UpsertProfile(ctx context.Context, doc models.ProfileDocument) (*models.ProfileDocument, error) {
	fields, err := toFields(doc)
	if err != nil {
		return nil, err
	}
	var out models.ProfileDocument
	if err := m.upsertByFilter(ctx, ProfilesCollection, bson.M{"user_id": doc.UserID}, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *Mongo) GetProfile(ctx context.Context, userID string) (*models.ProfileDocument, error) {
	oid, err := ParseID(userID)
	if err != nil {
		return nil, err
	}
	var doc models.ProfileDocument
	if err := m.findOne(ctx, ProfilesCollection, bson.M{"user_id": oid}, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpsertMetrics replaces the user's derived scores.
func (m *Mongo) UpsertMetrics(ctx context.Context, doc models.HealthMetricDocument) (*models.HealthMetricDocument, error) {
	fields, err := toFields(doc)
	if err != nil {
		return nil, err
	}
	var out models.HealthMetricDocument
	if err := m.upsertByFilter(ctx, HealthMetricsCollection, bson.M{"user_id": doc.UserID}, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *Mongo) GetMetrics(ctx context.Context, userID string) (*models.HealthMetricDocument, error) {
	oid, err := ParseID(userID)
	if err != nil {
		return nil, err
	}
	var doc models.HealthMetricDocument
	if err := m.findOne(ctx, HealthMetricsCollection, bson.M{"user_id": oid}, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
