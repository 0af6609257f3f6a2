package models

import "time"

type Candidate struct {
	ID                int64        `json:"id"`
	Name              string       `json:"name"`
	Slug              string       `json:"slug"`
	Email             string       `json:"email"`
	Resume            string       `json:"resume"`
	Referrer          *UserSummary `json:"referrer,omitempty"`
	QualificationRank *int         `json:"qualificationRank"`
	ProcessCount      int          `json:"processCount"`
	InterviewCount    int          `json:"interviewCount"`
	Processes         []Process    `json:"processes,omitempty"`
	Interviews        []Interview  `json:"interviews,omitempty"`
	CreatedDate       time.Time    `json:"createdDate"`
	UpdatedDate       time.Time    `json:"updatedDate"`
}

type CandidateSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Email string `json:"email"`
}

type Interview struct {
	ID          int64             `json:"id"`
	Comments    string            `json:"comments"`
	Candidate   *CandidateSummary `json:"candidate,omitempty"`
	Recruiter   *UserSummary      `json:"recruiter,omitempty"`
	CreatedDate time.Time         `json:"createdDate"`
	UpdatedDate time.Time         `json:"updatedDate"`
}
