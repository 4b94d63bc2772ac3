package wellness

import (
	"errors"
	"testing"
)

func answersFromMask(mask int) []bool {
	a := make([]bool, QuestionCount)
	for i := range a {
		a[i] = mask&(1<<i) != 0
	}
	return a
}

func TestClassifySumsToHundredForEveryVector(t *testing.T) {
	for mask := 0; mask < 1<<QuestionCount; mask++ {
		c, err := Classify(answersFromMask(mask))
		if err != nil {
			t.Fatalf("mask %012b: unexpected error: %v", mask, err)
		}
		if sum := c.Vata + c.Pitta + c.Kapha; sum != 100 {
			t.Fatalf("mask %012b: sum = %d, want 100 (%+v)", mask, sum, c)
		}
		if c.Vata < 0 || c.Pitta < 0 || c.Kapha < 0 {
			t.Fatalf("mask %012b: negative share %+v", mask, c)
		}
	}
}

func TestClassifyKnownVectors(t *testing.T) {
	allTrue := make([]bool, QuestionCount)
	for i := range allTrue {
		allTrue[i] = true
	}

	tests := []struct {
		name     string
		answers  []bool
		want     Constitution
		dominant Dosha
	}{
		{"all false", make([]bool, QuestionCount), Constitution{33, 33, 34}, Kapha},
		{"all true", allTrue, Constitution{36, 29, 35}, Vata},
		{
			"vata items only",
			[]bool{true, true, false, false, true, true, false, false, false, false, true, false},
			Constitution{71, 0, 29},
			Vata,
		},
		{
			"pitta items only",
			[]bool{false, false, true, true, false, false, false, false, true, false, false, true},
			Constitution{0, 100, 0},
			Pitta,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.answers)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify = %+v, want %+v", got, tt.want)
			}
			if d := got.Dominant(); d != tt.dominant {
				t.Errorf("Dominant = %s, want %s", d, tt.dominant)
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	a := answersFromMask(0b101100110101)
	first, _ := Classify(a)
	for i := 0; i < 10; i++ {
		again, _ := Classify(a)
		if again != first {
			t.Fatalf("run %d: %+v != %+v", i, again, first)
		}
	}
}

func TestClassifyRejectsWrongLength(t *testing.T) {
	for _, n := range []int{0, 11, 13} {
		_, err := Classify(make([]bool, n))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("len %d: expected *ValidationError, got %v", n, err)
		}
		if verr.Problems[0].Field != "doshaAnswers" {
			t.Errorf("len %d: field = %q", n, verr.Problems[0].Field)
		}
	}
}

func TestDominantTieBreak(t *testing.T) {
	tests := []struct {
		c    Constitution
		want Dosha
	}{
		{Constitution{40, 40, 20}, Vata},
		{Constitution{20, 40, 40}, Pitta},
		{Constitution{40, 20, 40}, Vata},
		{Constitution{33, 33, 34}, Kapha},
	}
	for _, tt := range tests {
		if got := tt.c.Dominant(); got != tt.want {
			t.Errorf("%+v: Dominant = %s, want %s", tt.c, got, tt.want)
		}
	}
}
