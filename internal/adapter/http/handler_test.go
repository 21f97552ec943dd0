package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port/mocks"
)

type testServer struct {
	handler  http.Handler
	chat     *mocks.MockChatUseCase
	entities *mocks.MockEntityUseCase
	auth     *mocks.MockAuthUseCase
}

func newTestServer(t *testing.T, limiter *RateLimiter) testServer {
	s := testServer{
		chat:     mocks.NewMockChatUseCase(t),
		entities: mocks.NewMockEntityUseCase(t),
		auth:     mocks.NewMockAuthUseCase(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.handler = NewHandler(s.chat, s.entities, s.auth, limiter, logger).Router()
	return s
}

func (s testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestChat_RequiresMessage(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(http.MethodPost, "/api/chat", `{"message":"   "}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Message is required", decodeBody[errorBody](t, rec).Error)
}

func TestChat_PassesCaller(t *testing.T) {
	s := newTestServer(t, nil)
	s.auth.EXPECT().Authenticate("good").Return("u1", nil)
	s.chat.EXPECT().
		HandleMessage(mock.Anything, domain.ChatRequest{Message: "hi", Context: domain.ContextAds}, "u1").
		Return(domain.ChatReply{ID: "r1", Role: domain.RoleAssistant, Content: "hello", Timestamp: time.Now(), ShouldRefresh: true})

	rec := s.do(http.MethodPost, "/api/chat", `{"message":"hi","context":"ads"}`, "good")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "hello", body["content"])
	assert.Equal(t, "assistant", body["role"])
	assert.Equal(t, true, body["shouldRefresh"])
	assert.NotContains(t, body, "actionResult")
}

func TestChat_InvalidTokenIsAnonymous(t *testing.T) {
	s := newTestServer(t, nil)
	s.auth.EXPECT().Authenticate("bad").Return("", domain.ErrAuthRequired)
	s.chat.EXPECT().HandleMessage(mock.Anything, mock.Anything, "").Return(domain.ChatReply{Content: "ok"})

	rec := s.do(http.MethodPost, "/api/chat", `{"message":"hi"}`, "bad")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChat_ClearContext(t *testing.T) {
	s := newTestServer(t, nil)
	s.chat.EXPECT().ClearContext("").Return()

	rec := s.do(http.MethodDelete, "/api/chat/context", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Chat context cleared successfully", decodeBody[map[string]string](t, rec)["message"])
}

func TestChat_RateLimited(t *testing.T) {
	s := newTestServer(t, NewRateLimiter(0.001, 1))
	s.chat.EXPECT().HandleMessage(mock.Anything, mock.Anything, "").Return(domain.ChatReply{Content: "ok"}).Once()

	first := s.do(http.MethodPost, "/api/chat", `{"message":"hi"}`, "")
	second := s.do(http.MethodPost, "/api/chat", `{"message":"hi"}`, "")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestChat_RateLimitIgnoresSourcePort(t *testing.T) {
	s := newTestServer(t, NewRateLimiter(0.001, 1))
	s.chat.EXPECT().HandleMessage(mock.Anything, mock.Anything, "").Return(domain.ChatReply{Content: "ok"}).Once()

	codes := make([]int, 0, 4)
	for _, addr := range []string{"10.0.0.7:50001", "10.0.0.7:50002", "10.0.0.7:50003", "10.0.0.7:50004"} {
		req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hi"}`))
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{
		http.StatusOK,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
	}, codes)
}

func TestCampaigns_CreateRequiresCaller(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(http.MethodPost, "/api/campaigns", `{"name":"x","objective":"OUTCOME_LEADS"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCampaigns_Create(t *testing.T) {
	s := newTestServer(t, nil)
	s.auth.EXPECT().Authenticate("good").Return("u1", nil)
	s.entities.EXPECT().
		CreateCampaign(mock.Anything, domain.NewCampaign{Name: "x", Objective: domain.ObjectiveLeads, UserID: "u1"}).
		Return(&domain.Campaign{ID: "c1", Name: "x"}, nil)

	rec := s.do(http.MethodPost, "/api/campaigns", `{"name":"x","objective":"OUTCOME_LEADS","user_id":"spoofed"}`, "good")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "c1", decodeBody[domain.Campaign](t, rec).ID)
}

func TestCampaigns_StatusMapping(t *testing.T) {
	s := newTestServer(t, nil)
	s.entities.EXPECT().GetCampaign(mock.Anything, "missing").Return(nil, domain.ErrEntityNotFound)
	s.entities.EXPECT().DeleteCampaign(mock.Anything, "c1").Return(nil)
	s.entities.EXPECT().UpdateCampaign(mock.Anything, "c1", mock.Anything).Return(nil, errors.Join(domain.ErrValidation, errors.New("bad status")))
	s.entities.EXPECT().ListCampaigns(mock.Anything, "").Return(nil, errors.New("db down"))

	rec := s.do(http.MethodGet, "/api/campaigns/missing", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, campaignNotFound, decodeBody[errorBody](t, rec).Error)

	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/api/campaigns/c1", "", "").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPut, "/api/campaigns/c1", `{"status":"DONE"}`, "").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPut, "/api/campaigns/c1", `{`, "").Code)

	rec = s.do(http.MethodGet, "/api/campaigns", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeBody[errorBody](t, rec).Error)
}

func TestAdSets_RequireAuth(t *testing.T) {
	s := newTestServer(t, nil)
	s.auth.EXPECT().Authenticate("bad").Return("", domain.ErrAuthRequired)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/adsets", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/ads/a1", "", "bad").Code)
}

func TestAdSets_ListByCampaign(t *testing.T) {
	s := newTestServer(t, nil)
	s.auth.EXPECT().Authenticate("good").Return("u1", nil)
	s.entities.EXPECT().ListAdSets(mock.Anything, "c1").Return([]domain.AdSet{{ID: "s1", DailyBudget: 5000}}, nil)
	s.entities.EXPECT().ListAds(mock.Anything, "s1").Return([]domain.Ad{}, nil)

	rec := s.do(http.MethodGet, "/api/campaigns/c1/adsets", "", "good")
	require.Equal(t, http.StatusOK, rec.Code)
	sets := decodeBody[[]domain.AdSet](t, rec)
	require.Len(t, sets, 1)
	assert.Equal(t, int64(5000), sets[0].DailyBudget)

	rec = s.do(http.MethodGet, "/api/adsets/s1/ads", "", "good")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestAuth_Register(t *testing.T) {
	s := newTestServer(t, nil)
	reg := domain.Registration{Email: "a@b.co", Password: "secret1", Name: "Ann"}
	s.auth.EXPECT().Register(mock.Anything, reg).
		Return(&domain.AuthResult{User: domain.User{ID: "u1", Email: "a@b.co"}, Token: "tok"}, nil).Once()
	s.auth.EXPECT().Register(mock.Anything, reg).Return(nil, domain.ErrEmailTaken).Once()

	body := `{"email":"a@b.co","password":"secret1","name":"Ann"}`
	rec := s.do(http.MethodPost, "/api/auth/register", body, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "tok", decodeBody[authResponse](t, rec).Token)

	rec = s.do(http.MethodPost, "/api/auth/register", body, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuth_LoginFailure(t *testing.T) {
	s := newTestServer(t, nil)
	s.auth.EXPECT().Login(mock.Anything, domain.Credentials{Email: "a@b.co", Password: "nope"}).Return(nil, domain.ErrInvalidCredentials)

	rec := s.do(http.MethodPost, "/api/auth/login", `{"email":"a@b.co","password":"nope"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid email or password", decodeBody[errorBody](t, rec).Error)
}

func TestAuth_Refresh(t *testing.T) {
	s := newTestServer(t, nil)
	s.auth.EXPECT().Authenticate("good").Return("u1", nil)
	s.auth.EXPECT().Profile(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	s.auth.EXPECT().Refresh(mock.Anything, "u1").Return("fresh", nil)

	rec := s.do(http.MethodPost, "/api/auth/refresh", "", "good")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fresh", decodeBody[authResponse](t, rec).Token)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", decodeBody[map[string]any](t, rec)["status"])

	rec = s.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_PerKey(t *testing.T) {
	l := NewRateLimiter(0.001, 1)

	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"))
}

func TestRateLimiter_EvictsIdleBuckets(t *testing.T) {
	l := NewRateLimiter(0.001, 1)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }

	assert.True(t, l.Allow("ip:10.0.0.1"))
	assert.True(t, l.Allow("ip:10.0.0.2"))
	assert.Len(t, l.buckets, 2)

	clock = clock.Add(limiterIdleTTL / 2)
	assert.False(t, l.Allow("ip:10.0.0.1"))

	clock = clock.Add(limiterIdleTTL * 3 / 4)
	assert.True(t, l.Allow("ip:10.0.0.3"))
	assert.Len(t, l.buckets, 2)
	assert.Contains(t, l.buckets, "ip:10.0.0.1")
	assert.NotContains(t, l.buckets, "ip:10.0.0.2")
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.7:50001"
	assert.Equal(t, "10.0.0.7", clientIP(req))

	req.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", clientIP(req))

	req.RemoteAddr = "10.0.0.7"
	assert.Equal(t, "10.0.0.7", clientIP(req))
}
