package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"ats/internal/auth"
	intconfig "ats/internal/config"
	intdb "ats/internal/db"
	"ats/internal/http/handlers"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"
)

var (
	created     = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	userRowCols = []string{
		"id", "first_name", "last_name", "email", "slug", "created_date", "updated_date",
		"offer_count", "client_count", "candidate_count",
	}
)

type testServer struct {
	engine *gin.Engine
	mock   sqlmock.Sqlmock
	tokens *auth.Manager
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	tokens, err := auth.NewManager(auth.Config{Secret: []byte("router-test")})
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}

	h := handlers.New(db, intdb.MySQL{}, tokens)
	r := NewRouter(intconfig.Env{}, h, prometheus.NewRegistry())
	return testServer{engine: r, mock: mock, tokens: tokens}
}

func (s testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

// authed attaches a valid token pair for user 1 and expects the session lookup.
func (s testServer) authed(t *testing.T, req *http.Request) *http.Request {
	t.Helper()
	pair, err := s.tokens.IssuePair(1)
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: pair.Refresh.Token})
	req.Header.Set(auth.XSRFHeader, pair.Access.Token)

	s.mock.ExpectQuery(regexp.QuoteMeta("WHERE u.id = ? LIMIT 1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(userRowCols).
			AddRow(1, "Jean", "Dupont", "jean@ats.io", "jean-dupont-1", created, created, 0, 0, 0))
	return req
}

type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Hint    any    `json:"hint"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode envelope %q: %v", w.Body.String(), err)
	}
	return e
}

func checkExpectations(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sql expectations: %v", err)
	}
}

func TestRefreshWithoutXSRFHeader(t *testing.T) {
	s := newTestServer(t)
	pair, _ := s.tokens.IssuePair(1)

	req := httptest.NewRequest(http.MethodGet, "/authentication/sessions/token", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: pair.Refresh.Token})
	w := s.do(req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	e := decodeEnvelope(t, w)
	if e.Status != 401 || e.Message != "Missing authentication token" {
		t.Fatalf("unexpected envelope %+v", e)
	}
}

func TestRefreshRotatesCookie(t *testing.T) {
	s := newTestServer(t)
	pair, _ := s.tokens.IssuePair(1)

	req := httptest.NewRequest(http.MethodGet, "/authentication/sessions/token", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: pair.Refresh.Token})
	req.Header.Set(auth.XSRFHeader, pair.Access.Token)
	w := s.do(req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.HasPrefix(w.Header().Get("Set-Cookie"), "Authorization=") {
		t.Fatalf("missing refresh cookie: %q", w.Header().Get("Set-Cookie"))
	}
	var body struct {
		XSRFToken auth.Token `json:"xsrfToken"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.XSRFToken.Token == "" {
		t.Fatalf("missing xsrf token: %s", w.Body.String())
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	credCols := []string{"id", "first_name", "last_name", "email", "slug", "password", "created_date", "updated_date"}

	t.Run("wrong password", func(t *testing.T) {
		s := newTestServer(t)
		s.mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = ? LIMIT 1")).
			WithArgs("jean@ats.io").
			WillReturnRows(sqlmock.NewRows(credCols).
				AddRow(1, "Jean", "Dupont", "jean@ats.io", "jean-dupont-1", string(hash), created, created))

		w := s.do(httptest.NewRequest(http.MethodPost, "/authentication/sessions",
			strings.NewReader(`{"email":"jean@ats.io","password":"nope"}`)))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if e := decodeEnvelope(t, w); e.Message != "Wrong credentials provided" || e.Hint != "No hint available" {
			t.Fatalf("unexpected envelope %+v", e)
		}
		checkExpectations(t, s.mock)
	})

	t.Run("success", func(t *testing.T) {
		s := newTestServer(t)
		s.mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = ? LIMIT 1")).
			WithArgs("jean@ats.io").
			WillReturnRows(sqlmock.NewRows(credCols).
				AddRow(1, "Jean", "Dupont", "jean@ats.io", "jean-dupont-1", string(hash), created, created))

		w := s.do(httptest.NewRequest(http.MethodPost, "/authentication/sessions",
			strings.NewReader(`{"email":"jean@ats.io","password":"s3cret"}`)))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		cookie := w.Header().Get("Set-Cookie")
		if !strings.HasPrefix(cookie, "Authorization=") || !strings.Contains(cookie, "HttpOnly; Max-Age=432000") {
			t.Fatalf("unexpected cookie %q", cookie)
		}
		if strings.Contains(w.Body.String(), "password") || strings.Contains(w.Body.String(), string(hash)) {
			t.Fatalf("password leaked: %s", w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"expiresIn":3600`) {
			t.Fatalf("missing xsrf token: %s", w.Body.String())
		}
		checkExpectations(t, s.mock)
	})

	t.Run("invalid body", func(t *testing.T) {
		s := newTestServer(t)
		w := s.do(httptest.NewRequest(http.MethodPost, "/authentication/sessions",
			strings.NewReader(`{"email":"not-an-email","extra":1}`)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		e := decodeEnvelope(t, w)
		want := "property extra should not exist, email must be an email, password should not be empty"
		if e.Message != want {
			t.Fatalf("unexpected message %q", e.Message)
		}
	})
}

func TestLogoutClearsCookie(t *testing.T) {
	s := newTestServer(t)
	w := s.do(httptest.NewRequest(http.MethodDelete, "/authentication/sessions", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Set-Cookie"); got != "Authorization=; Path=/; HttpOnly; Max-Age=0" {
		t.Fatalf("unexpected cookie %q", got)
	}
}

func TestProtectedRouteRequiresSession(t *testing.T) {
	s := newTestServer(t)
	w := s.do(httptest.NewRequest(http.MethodGet, "/offers", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if e := decodeEnvelope(t, w); e.Message != "Missing authentication token" {
		t.Fatalf("unexpected envelope %+v", e)
	}
}

func TestListOffersRejectsBadQuery(t *testing.T) {
	s := newTestServer(t)
	req := s.authed(t, httptest.NewRequest(http.MethodGet, "/offers?perPage=500&foo=1", nil))
	w := s.do(req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	e := decodeEnvelope(t, w)
	if !strings.Contains(e.Message, "property foo should not exist") ||
		!strings.Contains(e.Message, "perPage must not be greater than 100") {
		t.Fatalf("unexpected message %q", e.Message)
	}
	checkExpectations(t, s.mock)
}

func TestListUsers(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := newTestServer(t)
		req := s.authed(t, httptest.NewRequest(http.MethodGet,
			"/users?lastName[filter]=beginswith&lastName[criterias][]=Zz", nil))
		s.mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users u WHERE u.last_name LIKE ?")).
			WithArgs("Zz%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		w := s.do(req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
		}
		e := decodeEnvelope(t, w)
		if e.Message != "No users found" || e.Hint != "No users match the applied filters: lastName" {
			t.Fatalf("unexpected envelope %+v", e)
		}
		checkExpectations(t, s.mock)
	})

	t.Run("page", func(t *testing.T) {
		s := newTestServer(t)
		req := s.authed(t, httptest.NewRequest(http.MethodGet, "/users?page=1&perPage=1&order[lastName]=DESC", nil))
		s.mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users u")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		s.mock.ExpectQuery(regexp.QuoteMeta("ORDER BY u.last_name DESC LIMIT ? OFFSET ?")).
			WithArgs(1, 1).
			WillReturnRows(sqlmock.NewRows(userRowCols).
				AddRow(2, "Anne", "Martin", "anne@ats.io", "anne-martin-2", created, created, 0, 1, 0))

		w := s.do(req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Users    []map[string]any `json:"users"`
			Metadata struct {
				Page      int `json:"page"`
				PageCount int `json:"pageCount"`
				Links     struct {
					Next *string `json:"next"`
				} `json:"links"`
			} `json:"metadata"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(body.Users) != 1 || body.Users[0]["slug"] != "anne-martin-2" {
			t.Fatalf("unexpected users %+v", body.Users)
		}
		if body.Metadata.PageCount != 3 || body.Metadata.Links.Next == nil ||
			*body.Metadata.Links.Next != "/users?page=2&perPage=1&order[lastName]=DESC" {
			t.Fatalf("unexpected metadata %+v", body.Metadata)
		}
		checkExpectations(t, s.mock)
	})
}

func TestGetUserNotFound(t *testing.T) {
	s := newTestServer(t)
	req := s.authed(t, httptest.NewRequest(http.MethodGet, "/users/ghost", nil))
	s.mock.ExpectQuery(regexp.QuoteMeta("WHERE u.slug = ? LIMIT 1")).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	w := s.do(req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if e := decodeEnvelope(t, w); e.Message != "User with id ghost not found" {
		t.Fatalf("unexpected envelope %+v", e)
	}
	checkExpectations(t, s.mock)
}

func TestUnexpectedErrorIsHidden(t *testing.T) {
	s := newTestServer(t)
	req := s.authed(t, httptest.NewRequest(http.MethodGet, "/users/jean", nil))
	s.mock.ExpectQuery(regexp.QuoteMeta("WHERE u.slug = ? LIMIT 1")).
		WillReturnError(sql.ErrConnDone)

	w := s.do(req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if e := decodeEnvelope(t, w); e.Message != "Something went wrong" {
		t.Fatalf("unexpected envelope %+v", e)
	}
}

func TestSystemRoutes(t *testing.T) {
	s := newTestServer(t)
	if w := s.do(httptest.NewRequest(http.MethodGet, "/health", nil)); w.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", w.Code)
	}

	w := s.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ats_http_requests_total") {
		t.Fatalf("metrics not exposed: %d %s", w.Code, w.Body.String())
	}

	w = s.do(httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if w.Code != http.StatusNotFound || w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("unexpected no-route response %d", w.Code)
	}
}

func TestPanicRendersEnvelope(t *testing.T) {
	s := newTestServer(t)
	s.engine.GET("/explode", func(c *gin.Context) { panic("boom") })

	w := s.do(httptest.NewRequest(http.MethodGet, "/explode", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	e := decodeEnvelope(t, w)
	if e.Status != 500 || e.Message != "Something went wrong" || e.Hint != "No hint available" {
		t.Fatalf("unexpected envelope %+v", e)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("request id lost on panic")
	}
}

func TestRegisterReturnsSession(t *testing.T) {
	s := newTestServer(t)
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users WHERE email = ? LIMIT 1")).
		WithArgs("marie@ats.io").
		WillReturnError(sql.ErrNoRows)
	s.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (first_name, last_name, email, slug, password, created_date, updated_date)")).
		WithArgs("Marie", "Curie", "marie@ats.io", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(3, 1))

	w := s.do(httptest.NewRequest(http.MethodPost, "/authentication/users",
		strings.NewReader(`{"firstName":"Marie","lastName":"Curie","email":"marie@ats.io","password":"s3cret"}`)))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		User struct {
			ID   int64  `json:"id"`
			Slug string `json:"slug"`
		} `json:"user"`
		XSRFToken auth.Token `json:"xsrfToken"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.User.ID != 3 || !strings.HasPrefix(body.User.Slug, "marie-curie-") || body.XSRFToken.ExpiresIn != 3600 {
		t.Fatalf("unexpected session %s", w.Body.String())
	}
	if !strings.HasPrefix(w.Header().Get("Set-Cookie"), "Authorization=") {
		t.Fatalf("missing refresh cookie")
	}
	checkExpectations(t, s.mock)
}
