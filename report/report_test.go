package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/raushankrgupta/ayush-ai/models"
	"github.com/raushankrgupta/ayush-ai/wellness"
	"github.com/xuri/excelize/v2"
)

func TestRecommendationPDF(t *testing.T) {
	c := wellness.Constitution{Vata: 71, Pitta: 0, Kapha: 29}
	p := wellness.Profile{Name: "Asha", Height: 165, Weight: 58, SleepQuality: 6, StressLevel: 5,
		Digestion: wellness.DigestionNormal, Exercise: wellness.ExerciseDaily}
	m := wellness.DeriveMetrics(p)

	data, filename, contentType, err := RecommendationPDF(RecommendationInput{
		Name:         "Asha",
		Constitution: c,
		Metrics:      &m,
		Recommendation: wellness.Recommendation{
			Content:   wellness.RenderLocal(p, c),
			Source:    wellness.SourceLocalFallback,
			CreatedAt: time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatalf("RecommendationPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
	if filename != "ayush_report_20261018_080000.pdf" {
		t.Errorf("filename = %q", filename)
	}
	if contentType != ContentTypePDF {
		t.Errorf("content type = %q", contentType)
	}
}

func TestPlainText(t *testing.T) {
	if got := latin1(plain("• **Vata:** 71% 🧬")); got != "- Vata: 71% " {
		t.Errorf("got %q", got)
	}
}

func TestActivityWorkbook(t *testing.T) {
	activities := []models.Activity{
		{Date: "2026-10-18", ConsistencyScore: 100, WaterIntake: 2.5,
			Tasks: []models.TrackedTask{{Task: "Walk", Completed: true}, {Task: "Meditate", Completed: true}}},
		{Date: "2026-10-17", ConsistencyScore: 100},
		{Date: "2026-10-16", ConsistencyScore: 50,
			Tasks: []models.TrackedTask{{Task: "Walk", Completed: true}, {Task: "Meditate"}}},
	}

	data, filename, contentType, err := ActivityWorkbook(activities)
	if err != nil {
		t.Fatalf("ActivityWorkbook: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") || contentType != ContentTypeXLSX {
		t.Errorf("filename %q, content type %q", filename, contentType)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	checks := map[string]string{
		"A1": "Date",
		"A2": "2026-10-18",
		"C2": "2",
		"D4": "2",
		"B4": "50",
	}
	for cell, want := range checks {
		got, err := f.GetCellValue(ActivitySheet, cell)
		if err != nil || got != want {
			t.Errorf("%s = %q (%v), want %q", cell, got, err, want)
		}
	}
	if got, _ := f.GetCellValue(SummarySheet, "B2"); got != "2" {
		t.Errorf("streak = %q, want 2", got)
	}
}
