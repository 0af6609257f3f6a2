package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const DefaultHint = "No hint available"

// HTTPError is implemented by every error rendered as {status, message, hint}.
type HTTPError interface {
	error
	Status() int
	Hint() any
}

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }
func (e ValidationError) Status() int   { return http.StatusBadRequest }
func (e ValidationError) Hint() any     { return nil }

// NotFoundError reports a single resource missing for the given key (slug or id).
type NotFoundError struct {
	Resource string
	Key      string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.Key)
}

func (e NotFoundError) Unwrap() error { return e.Err }
func (e NotFoundError) Status() int   { return http.StatusNotFound }
func (e NotFoundError) Hint() any     { return nil }

// EmptyCollectionError reports a list query that matched no rows.
// Filters names the filters that were applied, if any.
type EmptyCollectionError struct {
	Collection string
	Filters    []string
}

func (e EmptyCollectionError) Error() string {
	return fmt.Sprintf("No %s found", e.Collection)
}

func (e EmptyCollectionError) Status() int { return http.StatusNotFound }

func (e EmptyCollectionError) Hint() any {
	if len(e.Filters) == 0 {
		return nil
	}
	return fmt.Sprintf("No %s match the applied filters: %s", e.Collection, strings.Join(e.Filters, ", "))
}

type ExceededPageIndexError struct {
	Msg string
}

func (e ExceededPageIndexError) Error() string { return "Page index exceeded" }
func (e ExceededPageIndexError) Status() int   { return http.StatusNotFound }
func (e ExceededPageIndexError) Hint() any {
	if e.Msg == "" {
		return nil
	}
	return e.Msg
}

// AuthCredentialsError never tells which of email or password was wrong.
type AuthCredentialsError struct{}

func (AuthCredentialsError) Error() string { return "Wrong credentials provided" }
func (AuthCredentialsError) Status() int   { return http.StatusUnauthorized }
func (AuthCredentialsError) Hint() any     { return nil }

type MissingCredentialsError struct{}

func (MissingCredentialsError) Error() string { return "Missing authentication token" }
func (MissingCredentialsError) Status() int   { return http.StatusUnauthorized }
func (MissingCredentialsError) Hint() any {
	return "Both the Authorization cookie and the x-xsrf-token header are required"
}

type InvalidTokenError struct {
	Err error
}

func (e InvalidTokenError) Error() string { return "Wrong authentication token" }
func (e InvalidTokenError) Unwrap() error { return e.Err }
func (e InvalidTokenError) Status() int   { return http.StatusUnauthorized }
func (e InvalidTokenError) Hint() any {
	return "Either the token hasn't been issued by our service or it is expired"
}

type DuplicateEmailError struct {
	Email string
}

func (e DuplicateEmailError) Error() string {
	return fmt.Sprintf("User with email %s already exists", e.Email)
}
func (e DuplicateEmailError) Status() int { return http.StatusBadRequest }
func (e DuplicateEmailError) Hint() any   { return nil }

// DuplicateNameError reports a creation whose slug is already taken.
// Existing is returned as hint when known.
type DuplicateNameError struct {
	Resource string
	Name     string
	Existing any
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("%s named %s already exists", e.Resource, e.Name)
}
func (e DuplicateNameError) Status() int { return http.StatusBadRequest }
func (e DuplicateNameError) Hint() any   { return e.Existing }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsEmptyCollection(err error) bool {
	var target EmptyCollectionError
	return errors.As(err, &target)
}

func IsInvalidToken(err error) bool {
	var target InvalidTokenError
	return errors.As(err, &target)
}

func IsMissingCredentials(err error) bool {
	var target MissingCredentialsError
	return errors.As(err, &target)
}

func IsAuthCredentials(err error) bool {
	var target AuthCredentialsError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

// AsHTTPError returns the renderable error in err's chain, if any.
func AsHTTPError(err error) (HTTPError, bool) {
	var target HTTPError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
