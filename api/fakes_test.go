package api

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/raushankrgupta/ayush-ai/models"
	"github.com/raushankrgupta/ayush-ai/store"
	"github.com/raushankrgupta/ayush-ai/utils"
	"github.com/raushankrgupta/ayush-ai/wellness"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore is an in-memory Store. Setting failWrites makes every write fail.
type memStore struct {
	mu sync.Mutex

	users    map[string]*models.User // by email
	profiles map[primitive.ObjectID]models.ProfileDocument
	metrics  map[primitive.ObjectID]models.HealthMetricDocument
	recs     []models.RecommendationDocument
	acts     map[string]models.Activity // user hex + date
	chats    []models.ChatSession

	failWrites bool
}

var errWrite = errors.New("write refused")

func newMemStore() *memStore {
	return &memStore{
		users:    map[string]*models.User{},
		profiles: map[primitive.ObjectID]models.ProfileDocument{},
		metrics:  map[primitive.ObjectID]models.HealthMetricDocument{},
		acts:     map[string]models.Activity{},
	}
}

func (m *memStore) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return errWrite
	}
	if _, ok := m.users[user.Email]; ok {
		return store.ErrDuplicate
	}
	user.ID = primitive.NewObjectID()
	u := *user
	m.users[user.Email] = &u
	return nil
}

func (m *memStore) UpsertOAuthUser(_ context.Context, email, name, image string, account models.ProviderAccount) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		u = &models.User{ID: primitive.NewObjectID(), Email: email, Provider: account.Provider}
		m.users[email] = u
	}
	u.Name, u.Image = name, image
	u.Accounts = append(u.Accounts, account)
	out := *u
	return &out, nil
}

func (m *memStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (m *memStore) FindUserByID(_ context.Context, userID string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID.Hex() == userID {
			out := *u
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) UpsertProfile(_ context.Context, doc models.ProfileDocument) (*models.ProfileDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return nil, errWrite
	}
	m.profiles[doc.UserID] = doc
	return &doc, nil
}

func (m *memStore) GetProfile(_ context.Context, userID string) (*models.ProfileDocument, error) {
	oid, err := store.ParseID(userID)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.profiles[oid]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &doc, nil
}

func (m *memStore) UpsertMetrics(_ context.Context, doc models.HealthMetricDocument) (*models.HealthMetricDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return nil, errWrite
	}
	m.metrics[doc.UserID] = doc
	return &doc, nil
}

func (m *memStore) GetMetrics(_ context.Context, userID string) (*models.HealthMetricDocument, error) {
	oid, err := store.ParseID(userID)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.metrics[oid]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &doc, nil
}

func (m *memStore) AppendRecommendation(_ context.Context, doc *models.RecommendationDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return errWrite
	}
	doc.ID = primitive.NewObjectID()
	m.recs = append(m.recs, *doc)
	return nil
}

func (m *memStore) userRecs(userID string) []models.RecommendationDocument {
	var out []models.RecommendationDocument
	for _, r := range m.recs {
		if r.UserID.Hex() == userID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *memStore) GetLatestRecommendation(_ context.Context, userID string) (*models.RecommendationDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	recs := m.userRecs(userID)
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

func (m *memStore) ListRecommendations(_ context.Context, userID string, page, limit int) ([]models.RecommendationDocument, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	recs := m.userRecs(userID)
	start := min((page-1)*limit, len(recs))
	end := min(start+limit, len(recs))
	return append([]models.RecommendationDocument{}, recs[start:end]...), int64(len(recs)), nil
}

func (m *memStore) UpsertActivity(_ context.Context, doc models.Activity) (*models.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return nil, errWrite
	}
	m.acts[doc.UserID.Hex()+doc.Date] = doc
	return &doc, nil
}

func (m *memStore) ListActivities(_ context.Context, userID string, since time.Time) ([]models.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Activity
	for _, a := range m.acts {
		if a.UserID.Hex() != userID {
			continue
		}
		if !since.IsZero() && a.Date < since.Format(time.DateOnly) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (m *memStore) CreateChatSession(_ context.Context, session *models.ChatSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return errWrite
	}
	session.ID = primitive.NewObjectID()
	m.chats = append(m.chats, *session)
	return nil
}

func (m *memStore) AppendChatTurns(_ context.Context, sessionID, userID string, turns ...wellness.ChatTurn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return errWrite
	}
	for i := range m.chats {
		if m.chats[i].ID.Hex() == sessionID && m.chats[i].UserID.Hex() == userID {
			m.chats[i].Messages = append(m.chats[i].Messages, turns...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeGenerator struct {
	text string
	err  error
}

func (g *fakeGenerator) Generate(context.Context, string, string) (string, error) {
	return g.text, g.err
}

type fakeMailer struct {
	sent []utils.Email
	err  error
}

func (f *fakeMailer) Send(_ context.Context, e utils.Email) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, e)
	return nil
}

type fakeArchiver struct {
	uploaded map[string][]byte
}

func (f *fakeArchiver) Upload(_ context.Context, key, _ string, data []byte) (string, error) {
	if f.uploaded == nil {
		f.uploaded = map[string][]byte{}
	}
	f.uploaded[key] = data
	return key, nil
}

func (f *fakeArchiver) PresignedURL(_ context.Context, key string) (string, error) {
	return "https://archive.example.com/" + key + "?sig=1", nil
}
