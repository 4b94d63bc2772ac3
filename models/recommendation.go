package models

import (
	"time"

	"github.com/raushankrgupta/ayush-ai/wellness"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecommendationDocument is an append-only history entry.
type RecommendationDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Content   string             `bson:"content" json:"content"`
	Source    string             `bson:"source" json:"source"`
	Dominant  string             `bson:"dominant,omitempty" json:"dominant,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

func NewRecommendationDocument(userID primitive.ObjectID, r wellness.Recommendation, dominant wellness.Dosha) RecommendationDocument {
	return RecommendationDocument{
		UserID:    userID,
		Content:   r.Content,
		Source:    string(r.Source),
		Dominant:  string(dominant),
		CreatedAt: r.CreatedAt,
	}
}
