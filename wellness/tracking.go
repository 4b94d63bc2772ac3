package wellness

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// ScheduledTask is one step of a daily plan.
type ScheduledTask struct {
	Time     string `json:"time"`
	Task     string `json:"task"`
	Duration string `json:"duration"`
	Reason   string `json:"reason"`
}

// DayPlan is a suggested daily routine.
type DayPlan struct {
	Advice   string          `json:"advice"`
	Schedule []ScheduledTask `json:"schedule"`
	Source   Source          `json:"source"`
}

const fallbackAdvice = "The heavens are cloudy. Stick to the foundational path of water and breath."

// FallbackDayPlan is the fixed routine used whenever the generator cannot
// produce a plan.
func FallbackDayPlan() DayPlan {
	return DayPlan{
		Advice: fallbackAdvice,
		Schedule: []ScheduledTask{
			{Time: "06:30", Task: "Surya Namaskar", Duration: "15m", Reason: "Awaken solar energy"},
			{Time: "08:00", Task: "Copper-Vessel Water", Duration: "5m", Reason: "Alkalize the body"},
			{Time: "13:00", Task: "Post-Lunch Walk", Duration: "10m", Reason: "Aid Agni (digestion)"},
			{Time: "17:00", Task: "Nadi Shodhana", Duration: "10m", Reason: "Balance nervous system"},
			{Time: "21:30", Task: "Digital Detox", Duration: "30m", Reason: "Prepare for Ojas recovery"},
		},
		Source: SourceLocalFallback,
	}
}

const plannerInstruction = `You are an Ayurvedic daily routine planner.
Respond with JSON only, no prose, in this shape:
{"advice": "one sentence", "schedule": [{"time": "HH:MM", "task": "name", "duration": "15m", "reason": "short reason"}]}`

// Planner builds daily routines with the generator and falls back to a fixed
// routine on any failure.
type Planner struct {
	gen    Generator
	logger *zap.Logger
}

func NewPlanner(gen Generator, logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{gen: gen, logger: logger}
}

// PlanDay never fails.
func (pl *Planner) PlanDay(ctx context.Context, waterLiters float64) DayPlan {
	plan, err := pl.remote(ctx, waterLiters)
	if err != nil {
		pl.logger.Warn("remote day plan unavailable, using fallback", zap.Error(err))
		return FallbackDayPlan()
	}
	return plan
}

func (pl *Planner) remote(ctx context.Context, waterLiters float64) (DayPlan, error) {
	if pl.gen == nil {
		return DayPlan{}, ErrMissingCredential
	}

	prompt := fmt.Sprintf("Plan today's Ayurvedic routine. Yesterday's water intake was %.1f liters. "+
		"Give five tasks covering morning, midday and evening.", waterLiters)
	text, err := pl.gen.Generate(ctx, plannerInstruction, prompt)
	if err != nil {
		return DayPlan{}, fmt.Errorf("%w: %w", ErrRemoteGeneration, err)
	}

	var plan DayPlan
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &plan); err != nil {
		return DayPlan{}, fmt.Errorf("%w: malformed plan: %w", ErrRemoteGeneration, err)
	}
	if len(plan.Schedule) == 0 {
		return DayPlan{}, fmt.Errorf("%w: empty schedule", ErrRemoteGeneration)
	}
	plan.Source = SourceRemote
	return plan, nil
}

// stripCodeFence removes a surrounding markdown code fence, with or without a
// language tag.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// DailyLog is the part of a tracked day the streak cares about.
type DailyLog struct {
	Date             string // YYYY-MM-DD
	ConsistencyScore int
}

// Streak counts consecutive fully completed days starting from the most
// recent log. Any day below 100 ends the streak.
func Streak(days []DailyLog) int {
	sorted := make([]DailyLog, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })

	n := 0
	for _, d := range sorted {
		if d.ConsistencyScore != 100 {
			break
		}
		n++
	}
	return n
}

// ConsistencyScore is the rounded percentage of completed tasks, 0 when there
// are no tasks.
func ConsistencyScore(completed, total int) int {
	if total <= 0 {
		return 0
	}
	if completed > total {
		completed = total
	}
	return percentOf(completed, total)
}
