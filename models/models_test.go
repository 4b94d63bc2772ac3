package models

import (
	"reflect"
	"testing"

	"github.com/raushankrgupta/ayush-ai/wellness"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProfileDocumentRoundTrip(t *testing.T) {
	p := wellness.Profile{
		Name: "Asha", Age: 29, Gender: "female", Height: 165, Weight: 58, Location: "Pune",
		BodyType: wellness.BodySlim, Appetite: wellness.AppetiteModerate, Digestion: wellness.DigestionNormal,
		SleepQuality: 6, StressLevel: 5, WakeUpTime: "06:30", SleepTime: "22:30",
		Exercise: wellness.ExerciseTwiceWeek, FoodType: wellness.FoodVegetarian, JunkFoodFreq: wellness.JunkWeekly,
		WaterIntake:  2,
		DoshaAnswers: []bool{true, true, false, false, true, true, false, false, false, false, true, false},
	}
	c := wellness.Constitution{Vata: 71, Pitta: 0, Kapha: 29}
	uid := primitive.NewObjectID()

	doc := NewProfileDocument(uid, p, c)
	if doc.UserID != uid {
		t.Errorf("UserID = %v, want %v", doc.UserID, uid)
	}
	if doc.Dosha.Dominant != "vata" {
		t.Errorf("Dominant = %q, want vata", doc.Dosha.Dominant)
	}
	if got := doc.Profile(); !reflect.DeepEqual(got, p) {
		t.Errorf("Profile() = %+v, want %+v", got, p)
	}
	if got := doc.Constitution(); got != c {
		t.Errorf("Constitution() = %+v, want %+v", got, c)
	}
}

func TestHealthMetricDocumentRoundTrip(t *testing.T) {
	m := wellness.Metrics{
		DigestScore: 80, SleepScore: 60, StressScore: 40, FitnessScore: 65,
		GastricRisk: wellness.RiskMedium, ObesityRisk: wellness.RiskLow, DiabetesRisk: wellness.RiskHigh,
	}
	doc := NewHealthMetricDocument(primitive.NewObjectID(), m)
	if doc.Metrics() != m {
		t.Errorf("Metrics() = %+v, want %+v", doc.Metrics(), m)
	}
}

func TestDailyLogs(t *testing.T) {
	logs := DailyLogs([]Activity{
		{Date: "2026-10-18", ConsistencyScore: 100},
		{Date: "2026-10-17", ConsistencyScore: 40},
	})
	want := []wellness.DailyLog{{Date: "2026-10-18", ConsistencyScore: 100}, {Date: "2026-10-17", ConsistencyScore: 40}}
	if !reflect.DeepEqual(logs, want) {
		t.Errorf("DailyLogs = %+v, want %+v", logs, want)
	}
	if got := wellness.Streak(logs); got != 1 {
		t.Errorf("Streak = %d, want 1", got)
	}
}
