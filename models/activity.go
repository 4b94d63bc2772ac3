package models

import (
	"time"

	"github.com/raushankrgupta/ayush-ai/wellness"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrackedTask is one task of a tracked day and whether it was done.
type TrackedTask struct {
	Task      string `bson:"task" json:"task"`
	Time      string `bson:"time,omitempty" json:"time,omitempty"`
	Completed bool   `bson:"completed" json:"completed"`
}

// Activity is a user's tracked day. Unique per (user, date).
type Activity struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           primitive.ObjectID `bson:"user_id" json:"user_id"`
	Date             string             `bson:"date" json:"date"` // YYYY-MM-DD
	Tasks            []TrackedTask      `bson:"tasks" json:"tasks"`
	ConsistencyScore int                `bson:"consistency_score" json:"consistencyScore"`
	WaterIntake      float64            `bson:"water_intake" json:"waterIntake"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}

// DailyLogs reduces activities to what the streak calculation needs.
func DailyLogs(activities []Activity) []wellness.DailyLog {
	logs := make([]wellness.DailyLog, len(activities))
	for i, a := range activities {
		logs[i] = wellness.DailyLog{Date: a.Date, ConsistencyScore: a.ConsistencyScore}
	}
	return logs
}
