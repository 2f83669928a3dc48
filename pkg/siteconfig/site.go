package siteconfig

import (
	"slices"
	"strings"
)

// Form type names declared in the site document.
const (
	FormRegistration = "registration"
	FormContact      = "contact"
)

// Site is the parsed site document.
type Site struct {
	Organization    Organization    `yaml:"organization" json:"organization"`
	SocialMedia     SocialMedia     `yaml:"socialMedia" json:"socialMedia"`
	Constituencies  []Constituency  `yaml:"constituencies" json:"constituencies"`
	Leadership      Leadership      `yaml:"leadership" json:"leadership"`
	Forms           map[string]Form `yaml:"forms" json:"forms"`
	API             API             `yaml:"api" json:"api"`
	Storage         StorageKeys     `yaml:"storage" json:"storage"`
	Validation      Validation      `yaml:"validation" json:"validation"`
	EventCategories []EventCategory `yaml:"eventCategories" json:"eventCategories"`
	Features        map[string]bool `yaml:"features" json:"features"`
	UI              UI              `yaml:"ui" json:"ui"`
	Messages        Messages        `yaml:"messages" json:"messages"`
}

type Organization struct {
	Name    string `yaml:"name" json:"name"`
	Acronym string `yaml:"acronym" json:"acronym"`
	Founded string `yaml:"founded" json:"founded"`
	Email   string `yaml:"email" json:"email"`
	Phone   string `yaml:"phone" json:"phone"`
	Address string `yaml:"address" json:"address"`
}

type SocialMedia struct {
	Instagram string `yaml:"instagram" json:"instagram"`
	WhatsApp  string `yaml:"whatsapp" json:"whatsapp"`
	Facebook  string `yaml:"facebook" json:"facebook"`
}

type Constituency struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Features    []string `yaml:"features" json:"features"`
}

// Role is a leadership position, committee or stakeholder group.
type Role struct {
	ID               string   `yaml:"id" json:"id"`
	Title            string   `yaml:"title" json:"title"`
	Description      string   `yaml:"description" json:"description"`
	Icon             string   `yaml:"icon" json:"icon"`
	Responsibilities []string `yaml:"responsibilities,omitempty" json:"responsibilities,omitempty"`
	Type             string   `yaml:"type,omitempty" json:"type,omitempty"`
}

type Leadership struct {
	Executive    []Role `yaml:"executive" json:"executive"`
	Committees   []Role `yaml:"committees" json:"committees"`
	Stakeholders []Role `yaml:"stakeholders" json:"stakeholders"`
}

// Option is a value/label pair of a select input.
type Option struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Form declares the required fields and option lists of one form type.
type Form struct {
	RequiredFields  []string `yaml:"requiredFields" json:"requiredFields"`
	EducationLevels []Option `yaml:"educationLevels,omitempty" json:"educationLevels,omitempty"`
	GenderOptions   []Option `yaml:"genderOptions,omitempty" json:"genderOptions,omitempty"`
}

type API struct {
	BaseURL   string            `yaml:"baseUrl" json:"baseUrl"`
	Endpoints map[string]string `yaml:"endpoints" json:"endpoints"`
}

// StorageKeys names the storage keys each collection is kept under.
type StorageKeys struct {
	Members  string `yaml:"members" json:"members"`
	Events   string `yaml:"events" json:"events"`
	Contacts string `yaml:"contacts" json:"contacts"`
	Settings string `yaml:"settings" json:"settings"`
}

// Validation holds the uncompiled validation settings.
type Validation struct {
	Email  string `yaml:"email" json:"email"`
	Phone  string `yaml:"phone" json:"phone"`
	Name   string `yaml:"name" json:"name"`
	MinAge int    `yaml:"minAge" json:"minAge"`
	MaxAge int    `yaml:"maxAge" json:"maxAge"`
}

type EventCategory struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color" json:"color"`
}

type UI struct {
	ItemsPerPage     int      `yaml:"itemsPerPage" json:"itemsPerPage"`
	MaxFileSize      int64    `yaml:"maxFileSize" json:"maxFileSize"`
	AllowedFileTypes []string `yaml:"allowedFileTypes" json:"allowedFileTypes"`
	DateFormat       string   `yaml:"dateFormat" json:"dateFormat"`
	TimeFormat       string   `yaml:"timeFormat" json:"timeFormat"`
}

type Messages struct {
	Success    SuccessMessages    `yaml:"success" json:"success"`
	Error      ErrorMessages      `yaml:"error" json:"error"`
	Validation ValidationMessages `yaml:"validation" json:"validation"`
}

type SuccessMessages struct {
	Registration string `yaml:"registration" json:"registration"`
	Contact      string `yaml:"contact" json:"contact"`
	Update       string `yaml:"update" json:"update"`
}

type ErrorMessages struct {
	Required         string `yaml:"required" json:"required"`
	InvalidEmail     string `yaml:"invalidEmail" json:"invalidEmail"`
	InvalidPhone     string `yaml:"invalidPhone" json:"invalidPhone"`
	InvalidFirstName string `yaml:"invalidFirstName" json:"invalidFirstName"`
	InvalidLastName  string `yaml:"invalidLastName" json:"invalidLastName"`
	AgeOutOfRange    string `yaml:"ageOutOfRange" json:"ageOutOfRange"`
	AgeTooYoung      string `yaml:"ageTooYoung" json:"ageTooYoung"`
	AgeTooOld        string `yaml:"ageTooOld" json:"ageTooOld"`
	ServerError      string `yaml:"serverError" json:"serverError"`
	NetworkError     string `yaml:"networkError" json:"networkError"`
}

type ValidationMessages struct {
	EmailExists   string `yaml:"emailExists" json:"emailExists"`
	PhoneExists   string `yaml:"phoneExists" json:"phoneExists"`
	InvalidOption string `yaml:"invalidOption" json:"invalidOption"`
	FormInvalid   string `yaml:"formInvalid" json:"formInvalid"`
}

// RequiredFields returns a copy of the required field list of formType.
func (s *Site) RequiredFields(formType string) ([]string, error) {
	f, ok := s.Forms[formType]
	if !ok {
		return nil, ErrUnknownForm
	}
	return slices.Clone(f.RequiredFields), nil
}

// Form returns a copy of the definition of formType.
func (s *Site) Form(formType string) (Form, bool) {
	f, ok := s.Forms[formType]
	if !ok {
		return Form{}, false
	}
	return Form{
		RequiredFields:  slices.Clone(f.RequiredFields),
		EducationLevels: slices.Clone(f.EducationLevels),
		GenderOptions:   slices.Clone(f.GenderOptions),
	}, true
}

// Constituency looks a constituency up by id.
func (s *Site) Constituency(id string) (Constituency, bool) {
	for _, c := range s.Constituencies {
		if c.ID == id {
			c.Features = slices.Clone(c.Features)
			return c, true
		}
	}
	return Constituency{}, false
}

// ConstituencyList returns a copy of all constituencies in document order.
func (s *Site) ConstituencyList() []Constituency {
	out := make([]Constituency, len(s.Constituencies))
	for i, c := range s.Constituencies {
		c.Features = slices.Clone(c.Features)
		out[i] = c
	}
	return out
}

// EventCategory looks an event category up by id.
func (s *Site) EventCategory(id string) (EventCategory, bool) {
	for _, c := range s.EventCategories {
		if c.ID == id {
			return c, true
		}
	}
	return EventCategory{}, false
}

// EventCategoryList returns a copy of all event categories.
func (s *Site) EventCategoryList() []EventCategory {
	return slices.Clone(s.EventCategories)
}

// LeadershipRoster returns a copy of the leadership roster.
func (s *Site) LeadershipRoster() Leadership {
	cloneRoles := func(in []Role) []Role {
		out := make([]Role, len(in))
		for i, r := range in {
			r.Responsibilities = slices.Clone(r.Responsibilities)
			out[i] = r
		}
		return out
	}
	return Leadership{
		Executive:    cloneRoles(s.Leadership.Executive),
		Committees:   cloneRoles(s.Leadership.Committees),
		Stakeholders: cloneRoles(s.Leadership.Stakeholders),
	}
}

// Endpoint joins the API base URL with the named endpoint path.
// It returns "" for an undeclared endpoint.
func (s *Site) Endpoint(name string) string {
	p, ok := s.API.Endpoints[name]
	if !ok {
		return ""
	}
	return strings.TrimSuffix(s.API.BaseURL, "/") + p
}

// FeatureFlags returns a copy of the declared feature flags.
func (s *Site) FeatureFlags() map[string]bool {
	out := make(map[string]bool, len(s.Features))
	for k, v := range s.Features {
		out[k] = v
	}
	return out
}

// Values returns the option values in declaration order.
func Values(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Value
	}
	return out
}
