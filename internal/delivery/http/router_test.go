package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	deliveryhttp "github.com/gdugdh24/rentscore-backend/internal/delivery/http"
	"github.com/gdugdh24/rentscore-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/rentscore-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/rentscore-backend/internal/domain"
	"github.com/gdugdh24/rentscore-backend/internal/infrastructure/cache"
	"github.com/gdugdh24/rentscore-backend/internal/usecase/auth"
	"github.com/gdugdh24/rentscore-backend/internal/usecase/engagement"
	"github.com/gdugdh24/rentscore-backend/internal/usecase/insight"
	"github.com/gdugdh24/rentscore-backend/internal/usecase/rating"
)

const testSecret = "test-secret-with-at-least-32-characters!"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := deliveryhttp.RegisterValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type memoryStore struct {
	mu         sync.Mutex
	properties map[uuid.UUID]*domain.Property
}

func (s *memoryStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.properties[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *memoryStore) Search(_ context.Context, _ domain.PropertyFilter, _, _ int) ([]*domain.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Property, 0, len(s.properties))
	for _, p := range s.properties {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (s *memoryStore) IncrementViewCount(_ context.Context, id uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.properties[id]
	if !ok {
		return 0, domain.ErrPropertyNotFound
	}
	p.ViewCount++
	return p.ViewCount, nil
}

func (s *memoryStore) IncrementContactRequests(_ context.Context, id uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.properties[id]
	if !ok {
		return 0, domain.ErrPropertyNotFound
	}
	p.ContactRequests++
	return p.ContactRequests, nil
}

type ownerStore struct {
	owners map[uuid.UUID]*domain.Owner
}

func (s *ownerStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Owner, error) {
	o, ok := s.owners[id]
	if !ok {
		return nil, domain.ErrOwnerNotFound
	}
	return o, nil
}

func (s *ownerStore) GetByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Owner, error) {
	out := make(map[uuid.UUID]*domain.Owner, len(ids))
	for _, id := range ids {
		if o, ok := s.owners[id]; ok {
			out[id] = o
		}
	}
	return out, nil
}

type fixture struct {
	engine     *gin.Engine
	store      *memoryStore
	tokens     *auth.TokenUseCase
	propertyID uuid.UUID
	ownerID    uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	propertyID := uuid.New()
	ownerID := uuid.New()
	store := &memoryStore{properties: map[uuid.UUID]*domain.Property{
		propertyID: {
			ID:        propertyID,
			OwnerID:   uuid.New(),
			Title:     "Sea facing flat",
			City:      "Mumbai",
			Area:      "Bandra",
			Type:      domain.PropertyTypeFlat,
			Purpose:   domain.PurposeRent,
			Price:     35000,
			Amenities: []string{"WiFi", "Parking"},
		},
	}}
	owners := &ownerStore{owners: map[uuid.UUID]*domain.Owner{
		ownerID: {ID: ownerID, Verified: true, Rating: 4.8, SuccessfulDeals: 12},
	}}

	log := zap.NewNop()
	tokens := auth.NewTokenUseCase(testSecret)
	ratingUC := rating.NewRatingUseCase(store, owners, rating.Limits{Candidates: 50, DefaultLimit: 10, MaxLimit: 20}, log)
	insightUC := insight.NewInsightUseCase(store, owners, cache.NewMemoryCache(), nil, time.Hour, log)
	engagementUC := engagement.NewEngagementUseCase(store, log)

	router := deliveryhttp.NewRouter(
		handler.NewPropertyHandler(ratingUC, insightUC, engagementUC),
		handler.NewRecommendationHandler(ratingUC),
		handler.NewOwnerHandler(ratingUC),
		middleware.NewAuthMiddleware(tokens),
		log,
	)

	return &fixture{
		engine:     router.Setup(),
		store:      store,
		tokens:     tokens,
		propertyID: propertyID,
		ownerID:    ownerID,
	}
}

func (f *fixture) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) token(t *testing.T) string {
	t.Helper()
	token, _, err := f.tokens.IssueToken(uuid.New(), time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	for _, method := range []string{http.MethodGet, http.MethodHead} {
		rec := f.do(t, method, "/health", nil, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s /health: expected 200, got %d", method, rec.Code)
		}
	}
}

func TestPropertyScoreRoute(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/properties/"+f.propertyID.String()+"/score", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		TotalScore int    `json:"total_score"`
		TrustBadge string `json:"trust_badge"`
	}
	decode(t, rec, &resp)
	if resp.TotalScore != 55 {
		t.Fatalf("expected total 55, got %d", resp.TotalScore)
	}
	if resp.TrustBadge != "NEW_SELLER" {
		t.Fatalf("expected NEW_SELLER for unknown owner, got %q", resp.TrustBadge)
	}
}

func TestPropertyRoutesRejectBadIDs(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"malformed id", "/api/v1/properties/not-a-uuid/score", http.StatusBadRequest},
		{"unknown property", "/api/v1/properties/" + uuid.NewString() + "/score", http.StatusNotFound},
		{"unknown property fairness", "/api/v1/properties/" + uuid.NewString() + "/price-fairness", http.StatusNotFound},
		{"unknown owner", "/api/v1/owners/" + uuid.NewString() + "/trust-badge", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, http.MethodGet, tt.path, nil, "")
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
			var resp handler.ErrorResponse
			decode(t, rec, &resp)
			if resp.Error == "" {
				t.Fatalf("expected error message in body")
			}
		})
	}
}

func TestPriceFairnessRoute(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/properties/"+f.propertyID.String()+"/price-fairness", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Price         float64 `json:"price"`
		MarketAverage float64 `json:"market_average"`
	}
	decode(t, rec, &resp)
	if resp.Price != 35000 {
		t.Fatalf("expected price 35000, got %v", resp.Price)
	}
	if resp.MarketAverage <= 0 {
		t.Fatalf("expected positive market average, got %v", resp.MarketAverage)
	}
}

func TestMatchRouteValidation(t *testing.T) {
	f := newFixture(t)
	path := "/api/v1/properties/" + f.propertyID.String() + "/match"

	tests := []struct {
		name   string
		body   map[string]any
		status int
	}{
		{"empty preferences", map[string]any{}, http.StatusOK},
		{"full preferences", map[string]any{
			"preferred_location": "Bandra",
			"budget_min":         30000,
			"budget_max":         40000,
			"property_type":      "flat",
			"purpose":            "rent",
			"required_amenities": []string{"wifi"},
			"user_profile":       "worker",
		}, http.StatusOK},
		{"unknown property type", map[string]any{"property_type": "castle"}, http.StatusBadRequest},
		{"unknown purpose", map[string]any{"purpose": "lease"}, http.StatusBadRequest},
		{"unknown persona", map[string]any{"user_profile": "pirate"}, http.StatusBadRequest},
		{"negative budget", map[string]any{"budget_min": -1}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, path, tt.body, "")
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestMatchRouteScoresPreferences(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/properties/"+f.propertyID.String()+"/match", map[string]any{
		"preferred_location": "Bandra",
		"budget_min":         30000,
		"budget_max":         40000,
		"property_type":      "FLAT",
		"purpose":            "RENT",
		"required_amenities": []string{"wifi", "parking"},
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		TotalScore  int    `json:"total_score"`
		MatchReason string `json:"match_reason"`
	}
	decode(t, rec, &resp)
	// 30 location + 25 budget + 15 type + 15 amenities + 10 neutral profile
	if resp.TotalScore != 95 {
		t.Fatalf("expected total 95, got %d", resp.TotalScore)
	}
	if resp.MatchReason != "Excellent location match • Fits your budget" {
		t.Fatalf("unexpected reason %q", resp.MatchReason)
	}
}

func TestEngagementRoutesRequireAuth(t *testing.T) {
	f := newFixture(t)
	base := "/api/v1/properties/" + f.propertyID.String()

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"view", http.MethodPost, base + "/view"},
		{"contact", http.MethodPost, base + "/contact"},
		{"insights", http.MethodGet, base + "/insights"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := f.do(t, tt.method, tt.path, nil, ""); rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 without token, got %d", rec.Code)
			}
			if rec := f.do(t, tt.method, tt.path, nil, "garbage"); rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 with bad token, got %d", rec.Code)
			}
		})
	}
}

func TestRecordViewAndContact(t *testing.T) {
	f := newFixture(t)
	token := f.token(t)
	base := "/api/v1/properties/" + f.propertyID.String()

	for i := 1; i <= 2; i++ {
		rec := f.do(t, http.MethodPost, base+"/view", nil, token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp engagement.CounterResponse
		decode(t, rec, &resp)
		if resp.ViewCount == nil || *resp.ViewCount != i {
			t.Fatalf("expected view count %d, got %v", i, resp.ViewCount)
		}
	}

	rec := f.do(t, http.MethodPost, base+"/contact", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp engagement.CounterResponse
	decode(t, rec, &resp)
	if resp.ContactRequests == nil || *resp.ContactRequests != 1 {
		t.Fatalf("expected one contact request, got %v", resp.ContactRequests)
	}

	rec = f.do(t, http.MethodPost, "/api/v1/properties/"+uuid.NewString()+"/view", nil, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown property, got %d", rec.Code)
	}
}

func TestInsightsRouteFallsBackWithoutGenerator(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/properties/"+f.propertyID.String()+"/insights", nil, f.token(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp insight.InsightResponse
	decode(t, rec, &resp)
	if resp.Source != insight.SourceFallback {
		t.Fatalf("expected fallback source, got %q", resp.Source)
	}
	if resp.Insight == "" {
		t.Fatalf("expected non-empty insight")
	}
}

func TestRecommendationsRoute(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/recommendations", map[string]any{
		"preferred_location": "Bandra",
		"limit":              5,
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Items []struct {
			Property struct {
				ID uuid.UUID `json:"id"`
			} `json:"property"`
		} `json:"items"`
		Candidates int `json:"candidates"`
	}
	decode(t, rec, &resp)
	if resp.Candidates != 1 || len(resp.Items) != 1 {
		t.Fatalf("expected one candidate and item, got %d/%d", resp.Candidates, len(resp.Items))
	}
	if resp.Items[0].Property.ID != f.propertyID {
		t.Fatalf("unexpected property %s", resp.Items[0].Property.ID)
	}

	rec = f.do(t, http.MethodPost, "/api/v1/recommendations", map[string]any{"limit": 1000}, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized limit, got %d", rec.Code)
	}
}

func TestTrustBadgeRoute(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/owners/"+f.ownerID.String()+"/trust-badge", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		TrustBadge string `json:"trust_badge"`
		Rank       int    `json:"rank"`
	}
	decode(t, rec, &resp)
	if resp.TrustBadge != "TOP_SELLER" || resp.Rank != 3 {
		t.Fatalf("expected TOP_SELLER rank 3, got %s rank %d", resp.TrustBadge, resp.Rank)
	}
}
