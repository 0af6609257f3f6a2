package validation

import (
	"ats/internal/domain/models"
	"ats/internal/query"
)

func stringFilter(name string) Field { return Field{Name: name, Kind: StringFilter} }

func numberFilter(name string) Field { return Field{Name: name, Kind: NumberFilter} }

func enumFilter(name string, allowed ...string) Field {
	return Field{Name: name, Kind: EnumFilter, OneOf: allowed}
}

// slugFilter is an enum filter over resource slugs; which slugs exist is
// checked against the database by the services.
func slugFilter(name string) Field { return Field{Name: name, Kind: EnumFilter} }

// List query strings.
var (
	UserList = List(
		stringFilter("firstName"),
		stringFilter("lastName"),
		stringFilter("email"),
		Order("firstName", "lastName", "email"),
	)

	ClientList = List(
		stringFilter("name"),
		slugFilter("accountManager"),
		Order("name"),
	)

	OfferList = List(
		stringFilter("job"),
		numberFilter("annualSalary"),
		enumFilter("contractType", models.Contracts...),
		slugFilter("referrer"),
		Order("job", "annualSalary", "contractType"),
	)

	CandidateList = List(
		stringFilter("name"),
		stringFilter("email"),
		slugFilter("referrer"),
		Order("name", "email"),
	)

	InterviewList = List(
		slugFilter("candidate"),
		slugFilter("recruiter"),
		Order("createdDate"),
	)

	ProcessList = List(
		enumFilter("status", models.ProcessStatuses...),
		slugFilter("offer"),
		slugFilter("candidate"),
		Order("status", "createdDate"),
	)
)

// Request bodies.
var (
	RegisterBody = Schema{
		{Name: "firstName", Kind: String, Required: true},
		{Name: "lastName", Kind: String, Required: true},
		{Name: "email", Kind: Email, Required: true},
		{Name: "password", Kind: String, Required: true},
	}

	LoginBody = Schema{
		{Name: "email", Kind: Email, Required: true},
		{Name: "password", Kind: String, Required: true},
	}

	CreateClientBody = Schema{
		{Name: "name", Kind: String, Required: true},
		{Name: "phone", Kind: String, Required: true},
		{Name: "accountManager", Kind: String},
	}

	CreateOfferBody = Schema{
		{Name: "job", Kind: String, Required: true},
		{Name: "annualSalary", Kind: Int, Required: true, Min: Bound(0)},
		{Name: "contractType", Kind: String, Required: true, OneOf: models.Contracts},
		{Name: "owner", Kind: String, Required: true},
	}

	CreateCandidateBody = Schema{
		{Name: "name", Kind: String, Required: true},
		{Name: "email", Kind: Email, Required: true},
		{Name: "resume", Kind: String},
	}

	ProcessStatusBody = Schema{
		{Name: "status", Kind: String, Required: true, OneOf: models.ProcessStatuses},
	}
)

// DecodeQuery parses a raw query string and decodes it against schema.
func DecodeQuery(schema Schema, rawQuery string) (query.Options, error) {
	input, err := ParseQuery(rawQuery)
	if err != nil {
		return nil, err
	}
	return Decode(schema, input)
}
