// Package wellness holds the constitution classifier, the wellness score
// deriver and the recommendation composer. Everything here is deterministic
// except the remote branch of the Composer and the Planner.
package wellness

// Body types
const (
	BodySlim     = "slim"
	BodyAthletic = "athletic"
	BodyCurvy    = "curvy"
)

// Appetite levels
const (
	AppetitePoor     = "poor"
	AppetiteModerate = "moderate"
	AppetiteStrong   = "strong"
)

// Digestion quality
const (
	DigestionPoor      = "poor"
	DigestionNormal    = "normal"
	DigestionExcellent = "excellent"
)

// Exercise frequency
const (
	ExerciseNone      = "none"
	ExerciseTwiceWeek = "2x/week"
	ExerciseFourWeek  = "4x/week"
	ExerciseDaily     = "daily"
)

// Food types
const (
	FoodVegetarian = "vegetarian"
	FoodVegan      = "vegan"
	FoodMixed      = "mixed"
)

// Junk food frequency
const (
	JunkDaily   = "daily"
	JunkWeekly  = "weekly"
	JunkMonthly = "monthly"
	JunkRarely  = "rarely"
)

// QuestionCount is the fixed length of the dosha questionnaire.
const QuestionCount = 12

// Questions is the dosha questionnaire in answer order. Index positions are
// significant: the classifier tables refer to them.
var Questions = [QuestionCount]string{
	"Do you often feel cold or have dry skin?",
	"Are you naturally quick and creative?",
	"Do you have a strong, intense personality?",
	"Do you prefer warm, cozy environments?",
	"Do you get tired easily?",
	"Are you naturally calm and stable?",
	"Do you often experience bloating?",
	"Do you have a fast metabolism?",
	"Do you prefer sweet tastes?",
	"Are you naturally organized and disciplined?",
	"Do you have difficulty with irregular schedules?",
	"Do you tend to overheat easily?",
}

// Profile is the questionnaire submitted by a user.
type Profile struct {
	Name     string  `json:"name"`
	Age      int     `json:"age"`
	Gender   string  `json:"gender"`
	Height   float64 `json:"height"` // in cm
	Weight   float64 `json:"weight"` // in kg
	Location string  `json:"location"`

	BodyType     string  `json:"bodyType"`
	Appetite     string  `json:"appetite"`
	Digestion    string  `json:"digestion"`
	SleepQuality int     `json:"sleepQuality"` // 1-10
	StressLevel  int     `json:"stressLevel"`  // 1-10
	WakeUpTime   string  `json:"wakeUpTime"`   // HH:MM
	SleepTime    string  `json:"sleepTime"`    // HH:MM
	Exercise     string  `json:"exercise"`
	FoodType     string  `json:"foodType"`
	JunkFoodFreq string  `json:"junkFoodFreq"`
	WaterIntake  float64 `json:"waterIntake"` // liters per day

	DoshaAnswers []bool `json:"doshaAnswers"`
}

// BMI returns the body mass index for the profile.
func (p Profile) BMI() float64 {
	return BMI(p.Height, p.Weight)
}
