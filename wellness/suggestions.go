package wellness

// Suggestion is a short dashboard nudge.
type Suggestion struct {
	Icon     string `json:"icon"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Suggest picks dashboard nudges for the weakest areas of a profile. When
// nothing needs attention a single maintenance suggestion is returned.
func Suggest(p Profile, m Metrics) []Suggestion {
	var out []Suggestion

	if m.StressScore < 50 {
		out = append(out, Suggestion{Icon: "🧘", Category: "wellness",
			Text: "Try 10 minutes of meditation daily to reduce stress"})
	}
	if p.Exercise == ExerciseNone || m.FitnessScore < 60 {
		out = append(out, Suggestion{Icon: "🚴", Category: "fitness",
			Text: "Start with a 20 minute walk every day"})
	}
	if p.WaterIntake < MinWaterLiters {
		out = append(out, Suggestion{Icon: "💧", Category: "hydration",
			Text: "Increase water intake to 2.5-3 liters daily"})
	}
	if p.SleepQuality < 7 {
		out = append(out, Suggestion{Icon: "🛌", Category: "sleep",
			Text: "Keep a consistent sleep schedule, aiming for 7-8 hours"})
	}
	if p.Digestion != DigestionExcellent {
		out = append(out, Suggestion{Icon: "🥗", Category: "nutrition",
			Text: "Favor warm cooked meals and avoid eating late at night"})
	}

	if len(out) == 0 {
		out = append(out, Suggestion{Icon: "✨", Category: "maintenance",
			Text: "Great work! Keep up your current routine"})
	}
	return out
}
