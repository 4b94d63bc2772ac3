package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/raushankrgupta/ayush-ai/models"
	"github.com/raushankrgupta/ayush-ai/utils"
	"github.com/raushankrgupta/ayush-ai/wellness"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// Store is the persistence the handlers need.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	UpsertOAuthUser(ctx context.Context, email, name, image string, account models.ProviderAccount) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)

	UpsertProfile(ctx context.Context, doc models.ProfileDocument) (*models.ProfileDocument, error)
	GetProfile(ctx context.Context, userID string) (*models.ProfileDocument, error)
	UpsertMetrics(ctx context.Context, doc models.HealthMetricDocument) (*models.HealthMetricDocument, error)
	GetMetrics(ctx context.Context, userID string) (*models.HealthMetricDocument, error)

	AppendRecommendation(ctx context.Context, doc *models.RecommendationDocument) error
	GetLatestRecommendation(ctx context.Context, userID string) (*models.RecommendationDocument, error)
	ListRecommendations(ctx context.Context, userID string, page, limit int) ([]models.RecommendationDocument, int64, error)

	UpsertActivity(ctx context.Context, doc models.Activity) (*models.Activity, error)
	ListActivities(ctx context.Context, userID string, since time.Time) ([]models.Activity, error)

	CreateChatSession(ctx context.Context, session *models.ChatSession) error
	AppendChatTurns(ctx context.Context, sessionID, userID string, turns ...wellness.ChatTurn) error
}

// Mailer sends email.
type Mailer interface {
	Send(ctx context.Context, e utils.Email) error
}

// Archiver stores report files and returns download links.
type Archiver interface {
	Upload(ctx context.Context, objectKey, contentType string, data []byte) (string, error)
	PresignedURL(ctx context.Context, objectKey string) (string, error)
}

// Options carries the collaborators of a Handler. Chat may be nil, in which
// case the sage reports itself unavailable.
type Options struct {
	Store    Store
	Engine   *wellness.Engine
	Planner  *wellness.Planner
	Chat     wellness.Generator
	Mailer   Mailer
	Archiver Archiver
	Tokens   *utils.TokenIssuer
	OAuth    *oauth2.Config // nil disables Google sign-in
	Logger   *zap.Logger

	AllowedOrigin string
	// RateLimit wraps the AI-backed routes. Nil means unlimited.
	RateLimit func(http.Handler) http.Handler
}

// Handler serves the HTTP API.
type Handler struct {
	store    Store
	engine   *wellness.Engine
	planner  *wellness.Planner
	chat     wellness.Generator
	mailer   Mailer
	archiver Archiver
	tokens   *utils.TokenIssuer
	oauth    *oauth2.Config
	logger   *zap.Logger

	allowedOrigin  string
	rateLimit      func(http.Handler) http.Handler
	googleUserInfo string
	now            func() time.Time
}

func NewHandler(opts Options) *Handler {
	h := &Handler{
		store:          opts.Store,
		engine:         opts.Engine,
		planner:        opts.Planner,
		chat:           opts.Chat,
		mailer:         opts.Mailer,
		archiver:       opts.Archiver,
		tokens:         opts.Tokens,
		oauth:          opts.OAuth,
		logger:         opts.Logger,
		allowedOrigin:  opts.AllowedOrigin,
		rateLimit:      opts.RateLimit,
		googleUserInfo: "https://www.googleapis.com/oauth2/v2/userinfo",
		now:            time.Now,
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	if h.engine == nil {
		h.engine = wellness.NewEngine(nil)
	}
	if h.planner == nil {
		h.planner = wellness.NewPlanner(nil, h.logger)
	}
	if h.allowedOrigin == "" {
		h.allowedOrigin = "*"
	}
	if h.rateLimit == nil {
		h.rateLimit = func(next http.Handler) http.Handler { return next }
	}
	return h
}

// Routes returns the full middleware-wrapped router.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	public := func(f http.HandlerFunc) http.Handler { return f }
	limited := func(f http.HandlerFunc) http.Handler { return h.rateLimit(f) }
	authed := func(f http.HandlerFunc) http.Handler { return h.RequireAuth(f) }
	authedLimited := func(f http.HandlerFunc) http.Handler { return h.rateLimit(h.RequireAuth(f)) }

	// Auth
	mux.Handle("POST /auth/signup", public(h.Signup))
	mux.Handle("POST /auth/login", public(h.Login))
	mux.Handle("GET /auth/google/login", public(h.GoogleLogin))
	mux.Handle("GET /auth/google/callback", public(h.GoogleCallback))

	// Catalogue
	mux.Handle("GET /api/questionnaire", public(h.Questionnaire))
	mux.Handle("GET /api/yoga", public(h.ListPoses))
	mux.Handle("GET /api/yoga/{id}", public(h.GetPose))

	// Profile and assessment
	mux.Handle("POST /api/profile", authedLimited(h.SubmitProfile))
	mux.Handle("GET /api/profile", authed(h.GetProfile))
	mux.Handle("GET /api/health", authed(h.GetHealth))

	// Recommendations
	mux.Handle("POST /api/recommendations/preview", limited(h.PreviewRecommendation))
	mux.Handle("GET /api/recommendations", authed(h.LatestRecommendation))
	mux.Handle("GET /api/recommendations/history", authed(h.RecommendationHistory))
	mux.Handle("GET /api/recommendations/latest/pdf", authed(h.DownloadRecommendationPDF))
	mux.Handle("POST /api/recommendations/latest/email", authedLimited(h.EmailRecommendation))
	mux.Handle("POST /api/recommendations/latest/archive", authed(h.ArchiveRecommendation))

	// Dashboard and tracking
	mux.Handle("GET /api/dashboard", authed(h.Dashboard))
	mux.Handle("POST /api/tracking", authedLimited(h.Track))
	mux.Handle("GET /api/tracking", authed(h.ListTracking))
	mux.Handle("GET /api/tracking/export", authed(h.ExportTracking))

	// Sage
	mux.Handle("POST /api/chat", authedLimited(h.Chat))

	var handler http.Handler = mux
	handler = h.CORS(handler)
	handler = utils.LatencyMiddleware(h.logger)(handler)
	handler = utils.RequestIDMiddleware(handler)
	return handler
}

// decodeJSON reads a bounded JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

// respondValidation writes a 400 listing every field problem.
func respondValidation(w http.ResponseWriter, b *strings.Builder, err error) bool {
	var verr *wellness.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	utils.AddToLogMessage(b, verr.Error())
	utils.RespondJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":    "Invalid profile",
		"problems": verr.Problems,
	})
	return true
}
