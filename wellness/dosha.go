package wellness

import (
	"math"
)

// Dosha is one of the three constitution axes.
type Dosha string

const (
	Vata  Dosha = "vata"
	Pitta Dosha = "pitta"
	Kapha Dosha = "kapha"
)

// Doshas in tie-break priority order.
var Doshas = [3]Dosha{Vata, Pitta, Kapha}

// Questionnaire indices contributing to each axis. Indices 1 and 5 count
// towards both vata and kapha.
var (
	vataItems  = [...]int{0, 1, 4, 5, 10}
	pittaItems = [...]int{2, 3, 8, 11}
	kaphaItems = [...]int{1, 5, 6, 7, 9}
)

// Constitution is the percentage split across the three axes. The values
// always sum to 100.
type Constitution struct {
	Vata  int `json:"vata"`
	Pitta int `json:"pitta"`
	Kapha int `json:"kapha"`
}

// Percent returns the percentage for a single axis.
func (c Constitution) Percent(d Dosha) int {
	switch d {
	case Vata:
		return c.Vata
	case Pitta:
		return c.Pitta
	case Kapha:
		return c.Kapha
	}
	return 0
}

// Dominant returns the axis with the highest percentage. Ties go to the
// first axis in vata, pitta, kapha order.
func (c Constitution) Dominant() Dosha {
	dominant := Doshas[0]
	for _, d := range Doshas[1:] {
		if c.Percent(d) > c.Percent(dominant) {
			dominant = d
		}
	}
	return dominant
}

// Classify maps exactly twelve yes/no answers to a constitution.
func Classify(answers []bool) (Constitution, error) {
	if len(answers) != QuestionCount {
		verr := &ValidationError{}
		verr.add("doshaAnswers", "must contain exactly %d answers, got %d", QuestionCount, len(answers))
		return Constitution{}, verr
	}

	vata := countYes(answers, vataItems[:])
	pitta := countYes(answers, pittaItems[:])
	kapha := countYes(answers, kaphaItems[:])

	total := vata + pitta + kapha
	if total == 0 {
		return Constitution{Vata: 33, Pitta: 33, Kapha: 34}, nil
	}

	v := percentOf(vata, total)
	p := percentOf(pitta, total)

	// kapha takes the rounding remainder so the split is exactly 100
	return Constitution{Vata: v, Pitta: p, Kapha: 100 - v - p}, nil
}

func countYes(answers []bool, items []int) int {
	n := 0
	for _, i := range items {
		if answers[i] {
			n++
		}
	}
	return n
}

func percentOf(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
