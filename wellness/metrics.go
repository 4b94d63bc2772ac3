package wellness

// RiskLevel is a coarse categorical estimate, not a diagnosis.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Condition names a risk family.
type Condition string

const (
	Gastric  Condition = "gastric"
	Obesity  Condition = "obesity"
	Diabetes Condition = "diabetes"
)

// Metrics holds the four wellness scores and three risk levels derived from
// a profile.
type Metrics struct {
	DigestScore  int `json:"digestScore"`
	SleepScore   int `json:"sleepScore"`
	StressScore  int `json:"stressScore"`
	FitnessScore int `json:"fitnessScore"`

	GastricRisk  RiskLevel `json:"gastricRisk"`
	ObesityRisk  RiskLevel `json:"obesityRisk"`
	DiabetesRisk RiskLevel `json:"diabetesRisk"`
}

// RiskDisplay pairs each risk level with the percentage shown on the
// dashboard.
type RiskDisplay struct {
	Gastric  int `json:"gastric"`
	Obesity  int `json:"obesity"`
	Diabetes int `json:"diabetes"`
}

// Display returns the presentation percentages for the metrics' risk levels.
func (m Metrics) Display() RiskDisplay {
	return RiskDisplay{
		Gastric:  DisplayPercent(Gastric, m.GastricRisk),
		Obesity:  DisplayPercent(Obesity, m.ObesityRisk),
		Diabetes: DisplayPercent(Diabetes, m.DiabetesRisk),
	}
}

var displayPercents = map[Condition]map[RiskLevel]int{
	Gastric:  {RiskHigh: 70, RiskMedium: 45, RiskLow: 20},
	Obesity:  {RiskHigh: 65, RiskMedium: 35, RiskLow: 20},
	Diabetes: {RiskHigh: 60, RiskMedium: 35, RiskLow: 15},
}

// DisplayPercent returns the percentage shown for a condition at a risk
// level, or 0 for unknown pairs.
func DisplayPercent(c Condition, level RiskLevel) int {
	return displayPercents[c][level]
}

// DeriveMetrics computes scores and risks from the lifestyle subset of the
// profile. Unknown enum values fall through to the documented defaults.
func DeriveMetrics(p Profile) Metrics {
	return Metrics{
		DigestScore:  clamp(40, 100, 70+(10-p.StressLevel)*2),
		SleepScore:   clamp(30, 100, p.SleepQuality*10),
		StressScore:  clamp(20, 100, (10-p.StressLevel)*8),
		FitnessScore: fitnessScore(p.Exercise),
		GastricRisk:  gastricRisk(p.Digestion),
		ObesityRisk:  obesityRisk(p.BodyType),
		DiabetesRisk: diabetesRisk(p.Exercise),
	}
}

func fitnessScore(exercise string) int {
	switch exercise {
	case ExerciseDaily:
		return 90
	case ExerciseFourWeek:
		return 75
	case ExerciseTwiceWeek:
		return 65
	case ExerciseNone:
		return 50
	default:
		return 60
	}
}

func gastricRisk(digestion string) RiskLevel {
	switch digestion {
	case DigestionExcellent:
		return RiskLow
	case DigestionNormal:
		return RiskMedium
	default:
		return RiskHigh
	}
}

func obesityRisk(bodyType string) RiskLevel {
	switch bodyType {
	case BodySlim:
		return RiskLow
	case BodyAthletic:
		return RiskMedium
	default:
		return RiskHigh
	}
}

func diabetesRisk(exercise string) RiskLevel {
	switch exercise {
	case ExerciseDaily:
		return RiskLow
	case ExerciseNone:
		return RiskHigh
	default:
		return RiskMedium
	}
}

func clamp(lo, hi, v int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// BMI computes weight / (height in meters)^2. It returns 0 for a
// non-positive height.
func BMI(heightCM, weightKG float64) float64 {
	if heightCM <= 0 {
		return 0
	}
	m := heightCM / 100
	return weightKG / (m * m)
}

// BMICategory buckets a BMI value into one of four named ranges.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Healthy weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
