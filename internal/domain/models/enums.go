package models

// Contract is the contract type of an offer.
type Contract string

const (
	ContractWorkStudy  Contract = "work_study"
	ContractInternship Contract = "internship"
	ContractPermanent  Contract = "permanent"
	ContractFixed      Contract = "fixed"
)

var Contracts = []string{
	string(ContractWorkStudy),
	string(ContractInternship),
	string(ContractPermanent),
	string(ContractFixed),
}

// ProcessStatus is the state of a candidate in a hiring process.
type ProcessStatus string

const (
	StatusCancelled        ProcessStatus = "annulé"
	StatusStronglyApproved ProcessStatus = "fortement approuvé"
	StatusWaiting          ProcessStatus = "en attente"
	StatusStronglyRejected ProcessStatus = "fortement refusé"
	StatusRejected         ProcessStatus = "refusé"
	StatusSelected         ProcessStatus = "selectionné"
)

var ProcessStatuses = []string{
	string(StatusCancelled),
	string(StatusStronglyApproved),
	string(StatusWaiting),
	string(StatusStronglyRejected),
	string(StatusRejected),
	string(StatusSelected),
}
