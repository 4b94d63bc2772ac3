package models

import (
	"time"

	"github.com/raushankrgupta/ayush-ai/wellness"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HealthMetricDocument holds the derived scores for a user. One per user.
type HealthMetricDocument struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`

	DigestScore  int `bson:"digest_score" json:"digestScore"`
	SleepScore   int `bson:"sleep_score" json:"sleepScore"`
	StressScore  int `bson:"stress_score" json:"stressScore"`
	FitnessScore int `bson:"fitness_score" json:"fitnessScore"`

	GastricRisk  string `bson:"gastric_risk" json:"gastricRisk"`
	ObesityRisk  string `bson:"obesity_risk" json:"obesityRisk"`
	DiabetesRisk string `bson:"diabetes_risk" json:"diabetesRisk"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func NewHealthMetricDocument(userID primitive.ObjectID, m wellness.Metrics) HealthMetricDocument {
	return HealthMetricDocument{
		UserID:       userID,
		DigestScore:  m.DigestScore,
		SleepScore:   m.SleepScore,
		StressScore:  m.StressScore,
		FitnessScore: m.FitnessScore,
		GastricRisk:  string(m.GastricRisk),
		ObesityRisk:  string(m.ObesityRisk),
		DiabetesRisk: string(m.DiabetesRisk),
	}
}

func (d HealthMetricDocument) Metrics() wellness.Metrics {
	return wellness.Metrics{
		DigestScore:  d.DigestScore,
		SleepScore:   d.SleepScore,
		StressScore:  d.StressScore,
		FitnessScore: d.FitnessScore,
		GastricRisk:  wellness.RiskLevel(d.GastricRisk),
		ObesityRisk:  wellness.RiskLevel(d.ObesityRisk),
		DiabetesRisk: wellness.RiskLevel(d.DiabetesRisk),
	}
}
