package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/finpulse/finpulse/internal/common"
	"github.com/finpulse/finpulse/internal/models"
)

// --- Fakes ---

type fakeMarketService struct {
	history *models.StockHistory
	err     error
}

func (f *fakeMarketService) StockHistory(context.Context, string, int, string) (*models.StockHistory, error) {
	return f.history, f.err
}

func (f *fakeMarketService) TopPerformers(context.Context) ([]*models.PerformanceRecord, *models.MarketSummary, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return []*models.PerformanceRecord{{Rank: 1, Symbol: "AAPL"}}, &models.MarketSummary{SymbolsAnalyzed: 1}, nil
}

func (f *fakeMarketService) TopFunds(context.Context) ([]*models.FundRecord, *models.FundSummary, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return []*models.FundRecord{{Rank: 1, Symbol: "VFIAX"}}, &models.FundSummary{SymbolsAnalyzed: 1}, nil
}

type fakeChatService struct {
	reply *models.ChatReply
	err   error
}

func (f *fakeChatService) Ask(context.Context, string) (*models.ChatReply, error) {
	return f.reply, f.err
}

func (f *fakeChatService) Tips() []models.TipDocument {
	return []models.TipDocument{{Title: "Tip", Body: "Body"}}
}

type memUserStore struct {
	users map[string]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]*models.User{}}
}

func (m *memUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, nil
}

func (m *memUserStore) Insert(_ context.Context, user *models.User) (string, error) {
	if _, ok := m.users[user.Username]; ok {
		return "", fmt.Errorf("username '%s' already exists", user.Username)
	}
	user.ID = fmt.Sprintf("user-%d", len(m.users)+1)
	user.CreatedAt = time.Now()
	m.users[user.Username] = user
	return user.ID, nil
}

func (m *memUserStore) Close() error { return nil }

// --- Harness ---

func newTestServer(t *testing.T, market *fakeMarketService, chat *fakeChatService, users *memUserStore) http.Handler {
	t.Helper()
	config := common.NewDefaultConfig()
	logger := common.NewSilentLogger()
	return NewServer(config, logger, market, chat, users).Handler()
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var env Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

// --- Tests ---

func TestHealthEndpoint(t *testing.T) {
	handler := newTestServer(t, &fakeMarketService{}, &fakeChatService{}, newMemUserStore())

	rec, _ := doRequest(t, handler, http.MethodGet, "/api/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestStockHistoryEndpoint(t *testing.T) {
	stats := &models.Stats{AveragePrice: 101, WindowSize: 7, WindowUnit: "days", Interval: "1d"}
	market := &fakeMarketService{
		history: &models.StockHistory{
			Symbol:  "AAPL",
			History: []models.HistoryPoint{{Date: "2026-01-01", Close: 101, Stats: stats}},
			Stats:   stats,
		},
	}
	handler := newTestServer(t, market, &fakeChatService{}, newMemUserStore())

	rec, env := doRequest(t, handler, http.MethodPost, "/api/stocks/AAPL/history",
		map[string]interface{}{"window_size": 7, "window_unit": "days"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if env.Status != "success" {
		t.Errorf("expected success status, got %s", env.Status)
	}
	data, _ := json.Marshal(env.Data)
	if !strings.Contains(string(data), `"symbol":"AAPL"`) {
		t.Errorf("unexpected data: %s", data)
	}
}

func TestStockHistoryFailure(t *testing.T) {
	market := &fakeMarketService{err: errors.New("no data available for symbol XYZ")}
	handler := newTestServer(t, market, &fakeChatService{}, newMemUserStore())

	rec, env := doRequest(t, handler, http.MethodPost, "/api/stocks/XYZ/history",
		map[string]interface{}{"window_size": 1, "window_unit": "months"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env.Status != "error" || !strings.Contains(env.Message, "no data") {
		t.Errorf("unexpected envelope: %+v", env)
	}
}

func TestStockHistoryMethodNotAllowed(t *testing.T) {
	handler := newTestServer(t, &fakeMarketService{}, &fakeChatService{}, newMemUserStore())

	rec, _ := doRequest(t, handler, http.MethodGet, "/api/stocks/AAPL/history", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestTopPerformersEndpoint(t *testing.T) {
	handler := newTestServer(t, &fakeMarketService{}, &fakeChatService{}, newMemUserStore())

	rec, env := doRequest(t, handler, http.MethodGet, "/api/stocks/top-performers", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, _ := json.Marshal(env.Data)
	if !strings.Contains(string(data), `"records"`) || !strings.Contains(string(data), `"summary"`) {
		t.Errorf("unexpected data: %s", data)
	}
}

func TestTopFundsEndpoint(t *testing.T) {
	handler := newTestServer(t, &fakeMarketService{}, &fakeChatService{}, newMemUserStore())

	rec, env := doRequest(t, handler, http.MethodGet, "/api/funds/top-funds", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if env.Status != "success" {
		t.Errorf("expected success, got %s", env.Status)
	}
}

func TestChatEndpoint(t *testing.T) {
	chat := &fakeChatService{reply: &models.ChatReply{Reply: "Save early.", Sources: []string{"Tip"}}}
	handler := newTestServer(t, &fakeMarketService{}, chat, newMemUserStore())

	rec, env := doRequest(t, handler, http.MethodPost, "/api/chat",
		map[string]string{"message": "how do I save?"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, _ := json.Marshal(env.Data)
	if !strings.Contains(string(data), "Save early.") {
		t.Errorf("unexpected data: %s", data)
	}
}

func TestChatEmptyMessage(t *testing.T) {
	handler := newTestServer(t, &fakeMarketService{}, &fakeChatService{}, newMemUserStore())

	rec, _ := doRequest(t, handler, http.MethodPost, "/api/chat", map[string]string{"message": "  "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestChatNotConfigured(t *testing.T) {
	config := common.NewDefaultConfig()
	handler := NewServer(config, common.NewSilentLogger(), &fakeMarketService{}, nil, newMemUserStore()).Handler()

	rec, env := doRequest(t, handler, http.MethodPost, "/api/chat", map[string]string{"message": "hi"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(env.Message, "not configured") {
		t.Errorf("unexpected message: %s", env.Message)
	}
}

func TestTipsEndpoint(t *testing.T) {
	handler := newTestServer(t, &fakeMarketService{}, &fakeChatService{}, newMemUserStore())

	rec, env := doRequest(t, handler, http.MethodGet, "/api/tips", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, _ := json.Marshal(env.Data)
	if !strings.Contains(string(data), `"tips"`) {
		t.Errorf("unexpected data: %s", data)
	}
}

func TestSignupAndLogin(t *testing.T) {
	users := newMemUserStore()
	handler := newTestServer(t, &fakeMarketService{}, &fakeChatService{}, users)

	rec, env := doRequest(t, handler, http.MethodPost, "/api/auth/signup",
		map[string]string{"username": "alice", "password": "s3cret", "email": "alice@example.com"})
	if rec.Code != http.StatusOK {
		t.Fatalf("signup: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data, _ := json.Marshal(env.Data)
	if !strings.Contains(string(data), `"token"`) {
		t.Errorf("signup: expected token in data: %s", data)
	}

	// Password is stored hashed, never echoed
	if strings.Contains(string(data), "s3cret") {
		t.Error("signup response leaked the password")
	}
	stored := users.users["alice"]
	if stored == nil || stored.PasswordHash == "s3cret" {
		t.Fatal("expected stored user with hashed password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}

	rec, env = doRequest(t, handler, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "alice", "password": "s3cret"})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if env.Status != "success" {
		t.Errorf("login: expected success, got %s", env.Status)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	users := newMemUserStore()
	hash, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	users.users["bob"] = &models.User{ID: "user-1", Username: "bob", PasswordHash: string(hash)}
	handler := newTestServer(t, &fakeMarketService{}, &fakeChatService{}, users)

	rec, _ := doRequest(t, handler, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "bob", "password": "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	handler := newTestServer(t, &fakeMarketService{}, &fakeChatService{}, newMemUserStore())

	rec, _ := doRequest(t, handler, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "ghost", "password": "x"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSignupDuplicate(t *testing.T) {
	users := newMemUserStore()
	handler := newTestServer(t, &fakeMarketService{}, &fakeChatService{}, users)

	body := map[string]string{"username": "carol", "password": "pw"}
	rec, _ := doRequest(t, handler, http.MethodPost, "/api/auth/signup", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("first signup: expected 200, got %d", rec.Code)
	}
	rec, env := doRequest(t, handler, http.MethodPost, "/api/auth/signup", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate signup: expected 400, got %d", rec.Code)
	}
	if !strings.Contains(env.Message, "already exists") {
		t.Errorf("unexpected message: %s", env.Message)
	}
}

func TestSignupMissingFields(t *testing.T) {
	handler := newTestServer(t, &fakeMarketService{}, &fakeChatService{}, newMemUserStore())

	rec, _ := doRequest(t, handler, http.MethodPost, "/api/auth/signup",
		map[string]string{"username": "", "password": ""})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// --- JWT helpers ---

func TestSignAndValidateJWT(t *testing.T) {
	cfg := &common.AuthConfig{JWTSecret: "test-secret-key", TokenExpiry: "1h"}
	user := &models.User{ID: "user-1", Username: "alice", Email: "alice@example.com"}

	token, err := signJWT(user, cfg)
	if err != nil {
		t.Fatalf("signJWT failed: %v", err)
	}

	parsed, claims, err := validateJWT(token, []byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("validateJWT failed: %v", err)
	}
	if !parsed.Valid {
		t.Error("expected valid token")
	}
	if claims["sub"] != "user-1" || claims["username"] != "alice" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims["iss"] != "finpulse-server" {
		t.Errorf("expected iss=finpulse-server, got %v", claims["iss"])
	}
}

func TestValidateJWTWrongSecret(t *testing.T) {
	cfg := &common.AuthConfig{JWTSecret: "secret-a", TokenExpiry: "1h"}
	token, err := signJWT(&models.User{ID: "u"}, cfg)
	if err != nil {
		t.Fatalf("signJWT failed: %v", err)
	}

	if _, _, err := validateJWT(token, []byte("secret-b")); err == nil {
		t.Fatal("expected validation failure with wrong secret")
	}
}
