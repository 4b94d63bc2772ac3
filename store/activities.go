package store

import (
	"context"
	"fmt"
	"time"

	"github.com/raushankrgupta/ayush-ai/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertActivity records the tracked tasks of one day. A second submission
// for the same date replaces the first.
func (m *Mongo) UpsertActivity(ctx context.Context, doc models.Activity) (*models.Activity, error) {
	fields, err := toFields(doc)
	if err != nil {
		return nil, err
	}
	var out models.Activity
	filter := bson.M{"user_id": doc.UserID, "date": doc.Date}
	if err := m.upsertByFilter(ctx, ActivitiesCollection, filter, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListActivities returns the user's tracked days, newest first. since limits
// results to dates on or after it when non-zero.
func (m *Mongo) ListActivities(ctx context.Context, userID string, since time.Time) ([]models.Activity, error) {
	oid, err := ParseID(userID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	filter := bson.M{"user_id": oid}
	if !since.IsZero() {
		filter["date"] = bson.M{"$gte": since.Format(time.DateOnly)}
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := m.collection(ActivitiesCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find activities: %w", err)
	}
	defer cursor.Close(ctx)

	activities := []models.Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return activities, nil
}
