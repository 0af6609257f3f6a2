package models

import "time"

// Process links a candidate to an offer (candidate_to_offers row).
type Process struct {
	ID          int64             `json:"id"`
	CandidateID int64             `json:"candidateId"`
	OfferID     int64             `json:"offerId"`
	Status      ProcessStatus     `json:"status"`
	Candidate   *CandidateSummary `json:"candidate,omitempty"`
	Offer       *OfferSummary     `json:"offer,omitempty"`
	Archives    []ProcessArchive  `json:"archives,omitempty"`
	CreatedDate time.Time         `json:"createdDate"`
	UpdatedDate time.Time         `json:"updatedDate"`
}

// ProcessArchive keeps a status a process held before it changed.
type ProcessArchive struct {
	ID          int64         `json:"id"`
	ProcessID   int64         `json:"processId"`
	Status      ProcessStatus `json:"status"`
	CreatedDate time.Time     `json:"createdDate"`
}

// AcquisitionPoint is one day of the acquisition analytics series.
type AcquisitionPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
