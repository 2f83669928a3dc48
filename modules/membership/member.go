package membership

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mcucsya/portal/pkg/dates"
	"github.com/mcucsya/portal/pkg/form"
	"github.com/mcucsya/portal/pkg/sanitizer"
	"github.com/mcucsya/portal/pkg/validator"
)

// Registration and contact field names beyond the engine's typed fields.
const (
	FieldGender       = "gender"
	FieldConstituency = "constituency"
	FieldEducation    = "education"

	FieldName    = "name"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Member is a registered association member.
type Member struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	DateOfBirth  string    `json:"dateOfBirth"`
	Gender       string    `json:"gender"`
	Constituency string    `json:"constituency"`
	Education    string    `json:"education"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FullName joins the first and last name.
func (m Member) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// DirectoryEntry is a Member as the directory lists it: dates rendered in
// the site's display format and the age on the day of the listing.
type DirectoryEntry struct {
	Member
	Age      int    `json:"age"`
	BornOn   string `json:"bornOn"`
	JoinedOn string `json:"joinedOn"`
}

func (m Member) directoryEntry(layout string, now time.Time) DirectoryEntry {
	e := DirectoryEntry{
		Member:   m,
		BornOn:   dates.FormatString(m.DateOfBirth, layout),
		JoinedOn: dates.Format(m.CreatedAt, layout),
	}
	if birth, err := validator.ParseDate(m.DateOfBirth); err == nil {
		e.Age = validator.Age(birth, now)
	}
	return e
}

var cleanName = sanitizer.Compose(sanitizer.Trim, sanitizer.NormalizeWhitespace, sanitizer.TitleCase)

// newMember builds a Member from a validated record. The constituency is
// expected in its normalized id form.
func newMember(rec form.Record, now time.Time) Member {
	return Member{
		ID:           uuid.New(),
		FirstName:    cleanName(rec.Get(form.FieldFirstName)),
		LastName:     cleanName(rec.Get(form.FieldLastName)),
		Email:        sanitizer.NormalizeEmail(rec.Get(form.FieldEmail)),
		Phone:        sanitizer.Trim(rec.Get(form.FieldPhone)),
		DateOfBirth:  sanitizer.Trim(rec.Get(form.FieldDateOfBirth)),
		Gender:       sanitizer.Trim(rec.Get(FieldGender)),
		Constituency: sanitizer.Trim(rec.Get(FieldConstituency)),
		Education:    sanitizer.Trim(rec.Get(FieldEducation)),
		CreatedAt:    now.UTC(),
	}
}

// Contact is a message sent through the contact form.
type Contact struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func newContact(rec form.Record, now time.Time) Contact {
	return Contact{
		ID:        uuid.New(),
		Name:      sanitizer.Apply(rec.Get(FieldName), sanitizer.Trim, sanitizer.NormalizeWhitespace),
		Email:     sanitizer.NormalizeEmail(rec.Get(form.FieldEmail)),
		Subject:   sanitizer.Apply(rec.Get(FieldSubject), sanitizer.StripHTML, sanitizer.Trim),
		Message:   sanitizer.FreeText(rec.Get(FieldMessage)),
		CreatedAt: now.UTC(),
	}
}

// Stats summarizes the membership.
type Stats struct {
	TotalMembers          int            `json:"totalMembers"`
	Constituencies        int            `json:"constituencies"`
	MembersByConstituency map[string]int `json:"membersByConstituency"`
}
