package wellness

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestPlanDayParsesFencedJSON(t *testing.T) {
	gen := &stubGenerator{text: "```json\n" +
		`{"advice":"Drink more water","schedule":[{"time":"07:00","task":"Walk","duration":"20m","reason":"Move"}]}` +
		"\n```"}

	plan := NewPlanner(gen, nil).PlanDay(context.Background(), 1.5)
	if plan.Source != SourceRemote {
		t.Fatalf("source = %s, want remote", plan.Source)
	}
	if plan.Advice != "Drink more water" || len(plan.Schedule) != 1 || plan.Schedule[0].Task != "Walk" {
		t.Errorf("plan = %+v", plan)
	}
	if !strings.Contains(gen.prompt, "1.5 liters") {
		t.Errorf("prompt missing water intake: %s", gen.prompt)
	}
}

func TestPlanDayFallback(t *testing.T) {
	tests := []struct {
		name string
		gen  Generator
	}{
		{"no generator", nil},
		{"generator error", &stubGenerator{err: errors.New("down")}},
		{"not json", &stubGenerator{text: "Take it easy today."}},
		{"empty schedule", &stubGenerator{text: `{"advice":"rest","schedule":[]}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := NewPlanner(tt.gen, nil).PlanDay(context.Background(), 2)
			if plan.Source != SourceLocalFallback {
				t.Fatalf("source = %s", plan.Source)
			}
			if plan.Advice != fallbackAdvice || len(plan.Schedule) != 5 {
				t.Errorf("plan = %+v", plan)
			}
			if plan.Schedule[0].Task != "Surya Namaskar" || plan.Schedule[4].Time != "21:30" {
				t.Errorf("unexpected fallback schedule %+v", plan.Schedule)
			}
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := map[string]string{
		`{"a":1}`:                    `{"a":1}`,
		"```\n{\"a\":1}\n```":        `{"a":1}`,
		"```json\n{\"a\":1}\n```\n ": `{"a":1}`,
	}
	for in, want := range tests {
		if got := stripCodeFence(in); got != want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name string
		days []DailyLog
		want int
	}{
		{"empty", nil, 0},
		{"all complete", []DailyLog{{"2026-10-01", 100}, {"2026-10-02", 100}, {"2026-10-03", 100}}, 3},
		{"unsorted input", []DailyLog{{"2026-10-02", 100}, {"2026-10-03", 100}, {"2026-10-01", 40}}, 2},
		{"latest incomplete", []DailyLog{{"2026-10-03", 80}, {"2026-10-02", 100}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.days); got != tt.want {
				t.Errorf("Streak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConsistencyScore(t *testing.T) {
	tests := []struct{ completed, total, want int }{
		{0, 0, 0},
		{3, 3, 100},
		{1, 3, 33},
		{2, 3, 67},
		{5, 3, 100},
	}
	for _, tt := range tests {
		if got := ConsistencyScore(tt.completed, tt.total); got != tt.want {
			t.Errorf("ConsistencyScore(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
		}
	}
}
