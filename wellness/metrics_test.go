package wellness

import (
	"math"
	"testing"
)

func TestDeriveMetricsScoreClamps(t *testing.T) {
	for stress := 1; stress <= 10; stress++ {
		for sleep := 1; sleep <= 10; sleep++ {
			m := DeriveMetrics(Profile{StressLevel: stress, SleepQuality: sleep})
			if m.DigestScore < 40 || m.DigestScore > 100 {
				t.Errorf("stress %d: digestScore %d out of range", stress, m.DigestScore)
			}
			if m.SleepScore < 30 || m.SleepScore > 100 {
				t.Errorf("sleep %d: sleepScore %d out of range", sleep, m.SleepScore)
			}
			if m.StressScore < 20 || m.StressScore > 100 {
				t.Errorf("stress %d: stressScore %d out of range", stress, m.StressScore)
			}
		}
	}
}

func TestDeriveMetricsFormulas(t *testing.T) {
	m := DeriveMetrics(Profile{StressLevel: 3, SleepQuality: 2})
	if m.DigestScore != 84 {
		t.Errorf("digestScore = %d, want 84", m.DigestScore)
	}
	if m.SleepScore != 30 {
		t.Errorf("sleepScore = %d, want 30 (clamped)", m.SleepScore)
	}
	if m.StressScore != 56 {
		t.Errorf("stressScore = %d, want 56", m.StressScore)
	}

	m = DeriveMetrics(Profile{StressLevel: 10, SleepQuality: 10})
	if m.StressScore != 20 || m.DigestScore != 70 || m.SleepScore != 100 {
		t.Errorf("got %+v", m)
	}
}

func TestExerciseMapping(t *testing.T) {
	tests := []struct {
		exercise string
		fitness  int
		diabetes RiskLevel
	}{
		{ExerciseDaily, 90, RiskLow},
		{ExerciseFourWeek, 75, RiskMedium},
		{ExerciseTwiceWeek, 65, RiskMedium},
		{ExerciseNone, 50, RiskHigh},
		{"3x/week", 60, RiskMedium},
		{"", 60, RiskMedium},
	}
	for _, tt := range tests {
		m := DeriveMetrics(Profile{Exercise: tt.exercise})
		if m.FitnessScore != tt.fitness {
			t.Errorf("%q: fitness = %d, want %d", tt.exercise, m.FitnessScore, tt.fitness)
		}
		if m.DiabetesRisk != tt.diabetes {
			t.Errorf("%q: diabetes = %s, want %s", tt.exercise, m.DiabetesRisk, tt.diabetes)
		}
	}
}

func TestRiskMapping(t *testing.T) {
	gastric := map[string]RiskLevel{
		DigestionExcellent: RiskLow,
		DigestionNormal:    RiskMedium,
		DigestionPoor:      RiskHigh,
		"unknown":          RiskHigh,
	}
	for digestion, want := range gastric {
		if got := DeriveMetrics(Profile{Digestion: digestion}).GastricRisk; got != want {
			t.Errorf("digestion %q: gastric = %s, want %s", digestion, got, want)
		}
	}

	obesity := map[string]RiskLevel{
		BodySlim:     RiskLow,
		BodyAthletic: RiskMedium,
		BodyCurvy:    RiskHigh,
		"unknown":    RiskHigh,
	}
	for body, want := range obesity {
		if got := DeriveMetrics(Profile{BodyType: body}).ObesityRisk; got != want {
			t.Errorf("bodyType %q: obesity = %s, want %s", body, got, want)
		}
	}
}

func TestDisplayPercents(t *testing.T) {
	m := Metrics{GastricRisk: RiskHigh, ObesityRisk: RiskMedium, DiabetesRisk: RiskLow}
	want := RiskDisplay{Gastric: 70, Obesity: 35, Diabetes: 15}
	if got := m.Display(); got != want {
		t.Errorf("Display = %+v, want %+v", got, want)
	}
	if got := DisplayPercent(Obesity, "extreme"); got != 0 {
		t.Errorf("unknown level = %d, want 0", got)
	}
}

func TestBMI(t *testing.T) {
	tests := []struct {
		height, weight float64
		bmi            float64
		category       string
	}{
		{180, 50, 15.4, "Underweight"},
		{170, 70, 24.2, "Healthy weight"},
		{170, 80, 27.7, "Overweight"},
		{160, 90, 35.2, "Obese"},
	}
	for _, tt := range tests {
		bmi := BMI(tt.height, tt.weight)
		if math.Abs(bmi-tt.bmi) > 0.05 {
			t.Errorf("BMI(%v, %v) = %.2f, want ~%.1f", tt.height, tt.weight, bmi, tt.bmi)
		}
		if got := BMICategory(bmi); got != tt.category {
			t.Errorf("BMICategory(%.1f) = %q, want %q", bmi, got, tt.category)
		}
	}
	if BMI(0, 70) != 0 {
		t.Error("BMI with zero height should be 0")
	}
}
