package wellness

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Source tags which strategy produced a recommendation.
type Source string

const (
	SourceRemote        Source = "remote"
	SourceLocalFallback Source = "local-fallback"
)

var (
	// ErrRemoteGeneration wraps every failure of the text generator.
	ErrRemoteGeneration = errors.New("remote generation failed")
	// ErrMissingCredential is reported when no generator is configured.
	ErrMissingCredential = fmt.Errorf("%w: missing credential", ErrRemoteGeneration)
)

// Generator produces text from a system instruction and a user prompt.
type Generator interface {
	Generate(ctx context.Context, systemInstruction, userPrompt string) (string, error)
}

// Recommendation is the report text together with the strategy that
// produced it.
type Recommendation struct {
	Content   string    `json:"content"`
	Source    Source    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
}

// Composer builds recommendation reports. It tries the generator once and
// falls back to the local template on any failure.
type Composer struct {
	gen    Generator
	logger *zap.Logger
	now    func() time.Time
}

// NewComposer returns a Composer. gen may be nil, in which case every report
// comes from the local template.
func NewComposer(gen Generator, logger *zap.Logger) *Composer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Composer{gen: gen, logger: logger, now: time.Now}
}

// Compose always returns a usable recommendation.
func (c *Composer) Compose(ctx context.Context, p Profile, con Constitution) Recommendation {
	content, err := c.remote(ctx, p, con)
	if err == nil {
		return Recommendation{Content: content, Source: SourceRemote, CreatedAt: c.now()}
	}

	c.logger.Warn("remote recommendation unavailable, using local template",
		zap.Error(err),
		zap.String("dominant", string(con.Dominant())),
	)
	return Recommendation{Content: RenderLocal(p, con), Source: SourceLocalFallback, CreatedAt: c.now()}
}

func (c *Composer) remote(ctx context.Context, p Profile, con Constitution) (string, error) {
	if c.gen == nil {
		return "", ErrMissingCredential
	}
	text, err := c.gen.Generate(ctx, SystemInstruction, BuildPrompt(p, con))
	if err != nil {
		if errors.Is(err, ErrRemoteGeneration) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrRemoteGeneration, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty response", ErrRemoteGeneration)
	}
	return text, nil
}
