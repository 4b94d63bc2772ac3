package store

import (
	"context"
	"fmt"
	"time"

	"github.com/raushankrgupta/ayush-ai/models"
	"github.com/raushankrgupta/ayush-ai/wellness"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (m *Mongo) CreateChatSession(ctx context.Context, session *models.ChatSession) error {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	session.UpdatedAt = session.CreatedAt
	result, err := m.collection(ChatSessionsCollection).InsertOne(ctx, session)
	if err != nil {
		return fmt.Errorf("insert chat session: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		session.ID = oid
	}
	return nil
}

// AppendChatTurns adds turns to the end of one of the user's sessions.
// ErrNotFound means no such session belongs to the user.
func (m *Mongo) AppendChatTurns(ctx context.Context, sessionID, userID string, turns ...wellness.ChatTurn) error {
	sid, err := ParseID(sessionID)
	if err != nil {
		return err
	}
	uid, err := ParseID(userID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"messages": bson.M{"$each": turns}},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	result, err := m.collection(ChatSessionsCollection).UpdateOne(ctx, bson.M{"_id": sid, "user_id": uid}, update)
	if err != nil {
		return fmt.Errorf("append chat turns: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
