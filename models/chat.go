package models

import (
	"time"

	"github.com/raushankrgupta/ayush-ai/wellness"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatSession is one sage conversation. Later turns are appended to it.
type ChatSession struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID  `bson:"user_id" json:"user_id"`
	Context   string              `bson:"context,omitempty" json:"context,omitempty"`
	Messages  []wellness.ChatTurn `bson:"messages" json:"messages"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at" json:"updated_at"`
}
