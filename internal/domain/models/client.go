package models

import "time"

type Client struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name"`
	Phone          string       `json:"phone"`
	Slug           string       `json:"slug"`
	AccountManager *UserSummary `json:"accountManager,omitempty"`
	OfferCount     int          `json:"offerCount"`
	CreatedDate    time.Time    `json:"createdDate"`
	UpdatedDate    time.Time    `json:"updatedDate"`
}

type ClientSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Slug  string `json:"slug"`
}
