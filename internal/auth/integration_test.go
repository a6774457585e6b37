package auth_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/HavenEstates/HE-Backend/internal/auth"
	"github.com/HavenEstates/HE-Backend/internal/db"
	"github.com/HavenEstates/HE-Backend/internal/middleware"
	"github.com/HavenEstates/HE-Backend/internal/token"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// dbAvailable tracks whether the database connection was established.
var dbAvailable bool

// testServer is the shared httptest server for all integration tests.
var testServer *httptest.Server

// testTokens is the token service the test server was built with, used to
// verify issued tokens directly.
var testTokens *token.Service

func TestMain(m *testing.M) {
	// Load .env.local relative to the repo root (two directories up from internal/auth/).
	_ = godotenv.Load("../../.env.local")

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		// No database available — skip all integration tests gracefully.
		os.Exit(m.Run())
	}

	db.Connect(databaseURL)
	dbAvailable = true

	// Set up auth tables (idempotent).
	auth.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var err error
	testTokens, err = token.NewService("integration-test-secret", time.Hour)
	if err != nil {
		panic(err)
	}
	authn := middleware.Authenticator(testTokens, logger)
	handler := &auth.Handler{Store: auth.NewStore(db.DB), Tokens: testTokens, Log: logger}

	// Mount handlers directly, without the per-IP rate limiter: every
	// httptest request shares one RemoteAddr and would trip it. The
	// limiter has its own unit tests.
	r := chi.NewRouter()
	r.Post("/api/auth/register", handler.Register)
	r.Post("/api/auth/login", handler.Login)
	r.Group(func(r chi.Router) {
		r.Use(authn)
		r.Get("/api/auth/me", handler.Me)
	})

	testServer = httptest.NewServer(r)
	defer testServer.Close()

	os.Exit(m.Run())
}

func requireDB(t *testing.T) {
	t.Helper()
	if !dbAvailable {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}
}

// uniqueEmail returns an address no previous run can have registered.
func uniqueEmail(t *testing.T) string {
	t.Helper()
	return fmt.Sprintf("it_%s@example.com", uuid.New().String()[:8])
}

func cleanupUser(t *testing.T, email string) {
	t.Helper()
	t.Cleanup(func() {
		db.DB.Where("email = ?", strings.ToLower(email)).Delete(&auth.User{})
	})
}

func postJSON(t *testing.T, path string, payload map[string]string) *http.Response {
	t.Helper()
	body, _ := json.Marshal(payload)
	resp, err := http.Post(testServer.URL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

// TestRegisterLoginMeFlow walks the happy path end to end: register returns
// 201 with a token whose verified id matches the created user, login with
// the same credentials succeeds, and /me with the bearer token returns the
// profile without any password material.
func TestRegisterLoginMeFlow(t *testing.T) {
	requireDB(t)
	email := uniqueEmail(t)
	cleanupUser(t, email)

	resp := postJSON(t, "/api/auth/register", map[string]string{
		"name": "Alice", "email": email, "password": "secret1",
	})
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 from register, got %d; body: %s", resp.StatusCode, body)
	}

	var registered struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal([]byte(body), &registered); err != nil {
		t.Fatalf("invalid register JSON: %s", body)
	}
	if registered.Token == "" || registered.User.ID == "" {
		t.Fatalf("expected token and user id in register response, got: %s", body)
	}

	claims, err := testTokens.Verify(registered.Token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if claims.UserID != registered.User.ID {
		t.Errorf("token subject %q != created user id %q", claims.UserID, registered.User.ID)
	}

	// Login with the same credentials.
	loginResp := postJSON(t, "/api/auth/login", map[string]string{
		"email": email, "password": "secret1",
	})
	loginBody := readBody(t, loginResp)
	if loginResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from login, got %d; body: %s", loginResp.StatusCode, loginBody)
	}

	// /me with the bearer token.
	req, _ := http.NewRequest(http.MethodGet, testServer.URL+"/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+registered.Token)
	meResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /api/auth/me: %v", err)
	}
	meBody := readBody(t, meResp)

	if meResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /me, got %d; body: %s", meResp.StatusCode, meBody)
	}
	if !strings.Contains(meBody, `"name":"Alice"`) {
		t.Errorf("expected profile in /me body, got: %s", meBody)
	}
	if strings.Contains(strings.ToLower(meBody), "password") {
		t.Errorf("/me body leaks password material: %s", meBody)
	}
}

// TestDuplicateEmailRejected verifies the case-insensitive uniqueness
// invariant: a second registration with the same address in different case
// fails with 400 and no write.
func TestDuplicateEmailRejected(t *testing.T) {
	requireDB(t)
	email := uniqueEmail(t)
	cleanupUser(t, email)

	first := postJSON(t, "/api/auth/register", map[string]string{
		"name": "Alice", "email": email, "password": "secret1",
	})
	if body := readBody(t, first); first.StatusCode != http.StatusCreated {
		t.Fatalf("setup register failed: %d %s", first.StatusCode, body)
	}

	second := postJSON(t, "/api/auth/register", map[string]string{
		"name": "Mallory", "email": strings.ToUpper(email), "password": "secret2",
	})
	body := readBody(t, second)
	if second.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d; body: %s", second.StatusCode, body)
	}

	var count int64
	if err := db.DB.Model(&auth.User{}).Where("email = ?", strings.ToLower(email)).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 user with email %s, got %d", email, count)
	}
}

// TestLoginFailuresIndistinguishable verifies the enumeration guard: a wrong
// password for a real account and a login for a nonexistent account return
// byte-identical responses.
func TestLoginFailuresIndistinguishable(t *testing.T) {
	requireDB(t)
	email := uniqueEmail(t)
	cleanupUser(t, email)

	setup := postJSON(t, "/api/auth/register", map[string]string{
		"name": "Alice", "email": email, "password": "secret1",
	})
	if body := readBody(t, setup); setup.StatusCode != http.StatusCreated {
		t.Fatalf("setup register failed: %d %s", setup.StatusCode, body)
	}

	wrongPass := postJSON(t, "/api/auth/login", map[string]string{
		"email": email, "password": "wrong-password",
	})
	wrongPassBody := readBody(t, wrongPass)

	noUser := postJSON(t, "/api/auth/login", map[string]string{
		"email": uniqueEmail(t), "password": "whatever1",
	})
	noUserBody := readBody(t, noUser)

	if wrongPass.StatusCode != http.StatusBadRequest || noUser.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400/400, got %d/%d", wrongPass.StatusCode, noUser.StatusCode)
	}
	if wrongPassBody != noUserBody {
		t.Errorf("login failure bodies differ:\n wrong password: %s\n unknown email:  %s", wrongPassBody, noUserBody)
	}
}

// TestMeWithoutToken verifies the unauthenticated path into a protected route.
func TestMeWithoutToken(t *testing.T) {
	requireDB(t)

	resp, err := http.Get(testServer.URL + "/api/auth/me")
	if err != nil {
		t.Fatalf("GET /api/auth/me: %v", err)
	}
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d; body: %s", resp.StatusCode, body)
	}
	if !strings.Contains(body, "No token provided") {
		t.Errorf("expected missing-token message, got: %s", body)
	}
}
