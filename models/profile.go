package models

import (
	"time"

	"github.com/raushankrgupta/ayush-ai/wellness"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DoshaDocument is the stored constitution split.
type DoshaDocument struct {
	Vata     int    `bson:"vata" json:"vata"`
	Pitta    int    `bson:"pitta" json:"pitta"`
	Kapha    int    `bson:"kapha" json:"kapha"`
	Dominant string `bson:"dominant" json:"dominant"`
}

// ProfileDocument is one user's questionnaire and constitution. There is at
// most one per user; a new submission replaces it.
type ProfileDocument struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`

	Name     string  `bson:"name" json:"name"`
	Age      int     `bson:"age" json:"age"`
	Gender   string  `bson:"gender" json:"gender"`
	Height   float64 `bson:"height" json:"height"`
	Weight   float64 `bson:"weight" json:"weight"`
	Location string  `bson:"location,omitempty" json:"location,omitempty"`

	BodyType     string  `bson:"body_type" json:"bodyType"`
	Appetite     string  `bson:"appetite" json:"appetite"`
	Digestion    string  `bson:"digestion" json:"digestion"`
	SleepQuality int     `bson:"sleep_quality" json:"sleepQuality"`
	StressLevel  int     `bson:"stress_level" json:"stressLevel"`
	WakeUpTime   string  `bson:"wake_up_time,omitempty" json:"wakeUpTime,omitempty"`
	SleepTime    string  `bson:"sleep_time,omitempty" json:"sleepTime,omitempty"`
	Exercise     string  `bson:"exercise" json:"exercise"`
	FoodType     string  `bson:"food_type" json:"foodType"`
	JunkFoodFreq string  `bson:"junk_food_freq" json:"junkFoodFreq"`
	WaterIntake  float64 `bson:"water_intake" json:"waterIntake"`
	DoshaAnswers []bool  `bson:"dosha_answers" json:"doshaAnswers"`

	Dosha DoshaDocument `bson:"dosha" json:"dosha"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// NewProfileDocument maps an engine profile and its constitution to the
// stored form.
func NewProfileDocument(userID primitive.ObjectID, p wellness.Profile, c wellness.Constitution) ProfileDocument {
	return ProfileDocument{
		UserID:       userID,
		Name:         p.Name,
		Age:          p.Age,
		Gender:       p.Gender,
		Height:       p.Height,
		Weight:       p.Weight,
		Location:     p.Location,
		BodyType:     p.BodyType,
		Appetite:     p.Appetite,
		Digestion:    p.Digestion,
		SleepQuality: p.SleepQuality,
		StressLevel:  p.StressLevel,
		WakeUpTime:   p.WakeUpTime,
		SleepTime:    p.SleepTime,
		Exercise:     p.Exercise,
		FoodType:     p.FoodType,
		JunkFoodFreq: p.JunkFoodFreq,
		WaterIntake:  p.WaterIntake,
		DoshaAnswers: p.DoshaAnswers,
		Dosha: DoshaDocument{
			Vata:     c.Vata,
			Pitta:    c.Pitta,
			Kapha:    c.Kapha,
			Dominant: string(c.Dominant()),
		},
	}
}

// Profile maps the stored form back to an engine profile.
func (d ProfileDocument) Profile() wellness.Profile {
	return wellness.Profile{
		Name:         d.Name,
		Age:          d.Age,
		Gender:       d.Gender,
		Height:       d.Height,
		Weight:       d.Weight,
		Location:     d.Location,
		BodyType:     d.BodyType,
		Appetite:     d.Appetite,
		Digestion:    d.Digestion,
		SleepQuality: d.SleepQuality,
		StressLevel:  d.StressLevel,
		WakeUpTime:   d.WakeUpTime,
		SleepTime:    d.SleepTime,
		Exercise:     d.Exercise,
		FoodType:     d.FoodType,
		JunkFoodFreq: d.JunkFoodFreq,
		WaterIntake:  d.WaterIntake,
		DoshaAnswers: d.DoshaAnswers,
	}
}

// Constitution returns the stored constitution split.
func (d ProfileDocument) Constitution() wellness.Constitution {
	return wellness.Constitution{Vata: d.Dosha.Vata, Pitta: d.Dosha.Pitta, Kapha: d.Dosha.Kapha}
}
