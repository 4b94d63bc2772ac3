package wellness

import "context"

// Assessment is everything the engine derives from one profile submission.
type Assessment struct {
	Constitution   Constitution   `json:"dosha"`
	Dominant       Dosha          `json:"dominant"`
	Metrics        Metrics        `json:"metrics"`
	Recommendation Recommendation `json:"recommendation"`
}

// Engine runs validate, classify, derive and compose in that order.
type Engine struct {
	composer *Composer
}

func NewEngine(composer *Composer) *Engine {
	if composer == nil {
		composer = NewComposer(nil, nil)
	}
	return &Engine{composer: composer}
}

// Assess returns a *ValidationError for bad input and otherwise always
// succeeds, since the composer never fails.
func (e *Engine) Assess(ctx context.Context, p Profile) (Assessment, error) {
	if err := Validate(p); err != nil {
		return Assessment{}, err
	}

	constitution, err := Classify(p.DoshaAnswers)
	if err != nil {
		return Assessment{}, err
	}

	return Assessment{
		Constitution:   constitution,
		Dominant:       constitution.Dominant(),
		Metrics:        DeriveMetrics(p),
		Recommendation: e.composer.Compose(ctx, p, constitution),
	}, nil
}
