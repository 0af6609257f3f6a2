package models

import "time"

type Offer struct {
	ID           int64          `json:"id"`
	Job          string         `json:"job"`
	Slug         string         `json:"slug"`
	AnnualSalary int64          `json:"annualSalary"`
	ContractType Contract       `json:"contractType"`
	Referrer     *UserSummary   `json:"referrer,omitempty"`
	Owner        *ClientSummary `json:"owner,omitempty"`
	ProcessCount int            `json:"processCount"`
	// Processes is only loaded on detail reads.
	Processes   []Process `json:"candidates,omitempty"`
	CreatedDate time.Time `json:"createdDate"`
	UpdatedDate time.Time `json:"updatedDate"`
}

type OfferSummary struct {
	ID           int64    `json:"id"`
	Job          string   `json:"job"`
	Slug         string   `json:"slug"`
	ContractType Contract `json:"contractType"`
}
