package models

import "time"

// User is a recruiter account. PasswordHash is never serialised.
type User struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Slug           string    `json:"slug"`
	PasswordHash   string    `json:"-"`
	OfferCount     int       `json:"offerCount"`
	ClientCount    int       `json:"clientCount"`
	CandidateCount int       `json:"candidateCount"`
	CreatedDate    time.Time `json:"createdDate"`
	UpdatedDate    time.Time `json:"updatedDate"`
}

// UserSummary is embedded in the resources a user owns or refers.
type UserSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Slug      string `json:"slug"`
}

func (u User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email, Slug: u.Slug}
}
