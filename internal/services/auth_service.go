package services

import (
	"context"
	"fmt"
	"strings"

	"ats/internal/auth"
	"ats/internal/domain"
	"ats/internal/domain/models"
	"ats/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type LoginInput struct {
	Email    string
	Password string
}

// Session is what login, registration and refresh hand back to the client.
type Session struct {
	User models.User
	auth.Pair
}

// AuthService checks credentials and issues token pairs. It keeps no state
// between requests: everything lives in the signed tokens.
type AuthService struct {
	Users     UserStore
	Tokens    *auth.Manager
	RequestID string
	// HashCost defaults to bcrypt.DefaultCost.
	HashCost int
}

// Login verifies email and password. Both an unknown email and a wrong password
// give the same AuthCredentialsError.
func (s AuthService) Login(ctx context.Context, in LoginInput) (Session, error) {
	u, err := s.Users.GetCredentials(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		if domain.IsNotFound(err) {
			return Session{}, domain.AuthCredentialsError{}
		}
		return Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		utils.LogEvent(s.RequestID, "auth", "login_rejected", fmt.Sprintf("user_id=%d", u.ID))
		return Session{}, domain.AuthCredentialsError{}
	}
	u.PasswordHash = ""

	pair, err := s.Tokens.IssuePair(u.ID)
	if err != nil {
		return Session{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d", u.ID))
	return Session{User: u, Pair: pair}, nil
}

// Register creates the account and logs it in.
func (s AuthService) Register(ctx context.Context, in RegisterInput) (Session, error) {
	email := strings.TrimSpace(in.Email)
	exists, err := s.Users.EmailExists(ctx, email)
	if err != nil {
		return Session{}, err
	}
	if exists {
		return Session{}, domain.DuplicateEmailError{Email: email}
	}

	cost := s.HashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), cost)
	if err != nil {
		return Session{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	u := models.User{
		FirstName:    utils.NormalizeSpace(in.FirstName),
		LastName:     utils.NormalizeSpace(in.LastName),
		Email:        email,
		Slug:         utils.Slugify(in.FirstName, in.LastName, utils.ShortID()),
		PasswordHash: string(hash),
	}
	if err := s.Users.Create(ctx, &u); err != nil {
		return Session{}, err
	}
	u.PasswordHash = ""

	pair, err := s.Tokens.IssuePair(u.ID)
	if err != nil {
		return Session{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "register", fmt.Sprintf("user_id=%d slug=%s", u.ID, u.Slug))
	return Session{User: u, Pair: pair}, nil
}

// Refresh rotates the presented pair after checking the companion binding.
func (s AuthService) Refresh(refreshCookie, xsrfHeader string) (auth.Pair, error) {
	pair, err := s.Tokens.Refresh(refreshCookie, xsrfHeader)
	if err != nil {
		return auth.Pair{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "refresh", fmt.Sprintf("user_id=%d", pair.UserID))
	return pair, nil
}

// Authenticate resolves the user behind a valid pair. A subject that no longer
// exists is treated as an invalid token.
func (s AuthService) Authenticate(ctx context.Context, refreshCookie, xsrfHeader string) (models.User, error) {
	id, err := s.Tokens.Authenticate(refreshCookie, xsrfHeader)
	if err != nil {
		return models.User{}, err
	}
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, domain.InvalidTokenError{Err: err}
		}
		return models.User{}, err
	}
	return u, nil
}
