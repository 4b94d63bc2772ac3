package wellness

import (
	"fmt"
	"strings"
	"time"
)

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned for malformed or incomplete input. It is never
// retried and never corrected.
type ValidationError struct {
	Problems []FieldError `json:"problems"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, p.Field+": "+p.Message)
	}
	return "invalid profile: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, format string, args ...interface{}) {
	e.Problems = append(e.Problems, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

var (
	bodyTypes   = []string{BodySlim, BodyAthletic, BodyCurvy}
	appetites   = []string{AppetitePoor, AppetiteModerate, AppetiteStrong}
	digestions  = []string{DigestionPoor, DigestionNormal, DigestionExcellent}
	exercises   = []string{ExerciseNone, ExerciseTwiceWeek, ExerciseFourWeek, ExerciseDaily}
	foodTypes   = []string{FoodVegetarian, FoodVegan, FoodMixed}
	junkFoodFqs = []string{JunkDaily, JunkWeekly, JunkMonthly, JunkRarely}
)

// Validate checks every field of the profile and reports all problems at
// once. It returns nil or a *ValidationError.
func Validate(p Profile) error {
	verr := &ValidationError{}

	if strings.TrimSpace(p.Name) == "" {
		verr.add("name", "is required")
	}
	if p.Age <= 0 {
		verr.add("age", "must be a positive integer")
	}
	if p.Height <= 0 {
		verr.add("height", "must be a positive number of centimeters")
	}
	if p.Weight <= 0 {
		verr.add("weight", "must be a positive number of kilograms")
	}
	if p.WaterIntake <= 0 {
		verr.add("waterIntake", "must be a positive number of liters")
	}

	checkEnum(verr, "bodyType", p.BodyType, bodyTypes)
	checkEnum(verr, "appetite", p.Appetite, appetites)
	checkEnum(verr, "digestion", p.Digestion, digestions)
	checkEnum(verr, "exercise", p.Exercise, exercises)
	checkEnum(verr, "foodType", p.FoodType, foodTypes)
	checkEnum(verr, "junkFoodFreq", p.JunkFoodFreq, junkFoodFqs)

	checkScale(verr, "sleepQuality", p.SleepQuality)
	checkScale(verr, "stressLevel", p.StressLevel)

	checkClock(verr, "wakeUpTime", p.WakeUpTime)
	checkClock(verr, "sleepTime", p.SleepTime)

	if len(p.DoshaAnswers) != QuestionCount {
		verr.add("doshaAnswers", "must contain exactly %d answers, got %d", QuestionCount, len(p.DoshaAnswers))
	}

	if len(verr.Problems) > 0 {
		return verr
	}
	return nil
}

func checkEnum(verr *ValidationError, field, value string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	verr.add(field, "must be one of %s", strings.Join(allowed, "|"))
}

func checkScale(verr *ValidationError, field string, value int) {
	if value < 1 || value > 10 {
		verr.add(field, "must be between 1 and 10")
	}
}

// Times are optional; when present they must be HH:MM.
func checkClock(verr *ValidationError, field, value string) {
	if value == "" {
		return
	}
	if _, err := time.Parse("15:04", value); err != nil {
		verr.add(field, "must be a time of day in HH:MM format")
	}
}
