package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"ats/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	DefaultAccessTTL  = time.Hour
	DefaultRefreshTTL = 5 * 24 * time.Hour

	// CookieName carries the refresh token.
	CookieName = "Authorization"
	// XSRFHeader carries the access token the refresh token was issued with.
	XSRFHeader = "x-xsrf-token"
)

// Config holds JWT configuration
type Config struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// Token is a signed value with its lifetime in seconds.
type Token struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// RefreshClaims binds a refresh token to its subject and companion access token.
type RefreshClaims struct {
	jwt.RegisteredClaims
	XSRFToken string `json:"xsrfToken"`
	TTL       int64  `json:"_exp"`
}

// Pair is what a login, a registration or a refresh hands back to the client:
// the access token goes in the body, the refresh token in the cookie.
type Pair struct {
	UserID  int64
	Access  Token
	Refresh Token
}

// Manager issues and verifies both tokens. It holds no state besides its config.
type Manager struct {
	cfg Config
}

func NewManager(cfg Config) (*Manager, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("auth: empty signing secret")
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Manager{cfg: cfg}, nil
}

func (m *Manager) now() time.Time {
	return m.cfg.Now()
}

// IssueAccessToken signs a token that carries nothing but its expiry and id.
func (m *Manager) IssueAccessToken() (Token, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.AccessTTL)),
	}
	signed, err := m.sign(claims)
	if err != nil {
		return Token{}, err
	}
	return Token{Token: signed, ExpiresIn: int64(m.cfg.AccessTTL / time.Second)}, nil
}

// IssueRefreshToken signs a refresh token for userID whose companion is access.
func (m *Manager) IssueRefreshToken(userID int64, access Token) (Token, error) {
	return m.refreshToken(userID, access, m.now().Add(m.cfg.RefreshTTL))
}

func (m *Manager) refreshToken(userID int64, access Token, expiresAt time.Time) (Token, error) {
	now := m.now()
	ttl := int64(expiresAt.Sub(now) / time.Second)
	if ttl <= 0 {
		return Token{}, domain.InvalidTokenError{}
	}
	claims := RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		XSRFToken: access.Token,
		TTL:       ttl,
	}
	signed, err := m.sign(claims)
	if err != nil {
		return Token{}, err
	}
	return Token{Token: signed, ExpiresIn: ttl}, nil
}

// IssuePair creates a fresh access token and its refresh token.
func (m *Manager) IssuePair(userID int64) (Pair, error) {
	access, err := m.IssueAccessToken()
	if err != nil {
		return Pair{}, err
	}
	refresh, err := m.IssueRefreshToken(userID, access)
	if err != nil {
		return Pair{}, err
	}
	return Pair{UserID: userID, Access: access, Refresh: refresh}, nil
}

// Authenticate verifies both artifacts and their companion binding, and returns
// the user id the refresh token was issued for.
func (m *Manager) Authenticate(refreshCookie, xsrfHeader string) (int64, error) {
	claims, err := m.verify(refreshCookie, xsrfHeader)
	if err != nil {
		return 0, err
	}
	return subject(claims)
}

// Refresh verifies both artifacts and rotates them. The rotated refresh token
// keeps the subject and the absolute expiry of the presented one.
func (m *Manager) Refresh(refreshCookie, xsrfHeader string) (Pair, error) {
	claims, err := m.verify(refreshCookie, xsrfHeader)
	if err != nil {
		return Pair{}, err
	}
	userID, err := subject(claims)
	if err != nil {
		return Pair{}, err
	}

	access, err := m.IssueAccessToken()
	if err != nil {
		return Pair{}, err
	}
	refresh, err := m.refreshToken(userID, access, claims.ExpiresAt.Time)
	if err != nil {
		return Pair{}, err
	}
	return Pair{UserID: userID, Access: access, Refresh: refresh}, nil
}

// Cookie formats the Set-Cookie value carrying a refresh token.
func (m *Manager) Cookie(t Token) string {
	return fmt.Sprintf("%s=%s; Path=/; HttpOnly; Max-Age=%d", CookieName, t.Token, t.ExpiresIn)
}

// ClearCookie formats the Set-Cookie value sent on logout.
func (m *Manager) ClearCookie() string {
	return fmt.Sprintf("%s=; Path=/; HttpOnly; Max-Age=0", CookieName)
}

func (m *Manager) verify(refreshCookie, xsrfHeader string) (*RefreshClaims, error) {
	if refreshCookie == "" || xsrfHeader == "" {
		return nil, domain.MissingCredentialsError{}
	}

	if _, err := m.parse(xsrfHeader, &jwt.RegisteredClaims{}); err != nil {
		return nil, domain.InvalidTokenError{Err: err}
	}

	claims := &RefreshClaims{}
	if _, err := m.parse(refreshCookie, claims); err != nil {
		return nil, domain.InvalidTokenError{Err: err}
	}

	// same error on both sides of a mismatch
	if claims.XSRFToken != xsrfHeader {
		return nil, domain.InvalidTokenError{}
	}
	return claims, nil
}

func (m *Manager) sign(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.cfg.Secret)
	if err != nil {
		return "", domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	return signed, nil
}

func (m *Manager) parse(raw string, claims jwt.Claims) (*jwt.Token, error) {
	return jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return m.cfg.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
}

func subject(claims *RefreshClaims) (int64, error) {
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.InvalidTokenError{Err: err}
	}
	return id, nil
}
