package siteconfig

import (
	"maps"
	"slices"
)

// Overrides are validation settings supplied by the environment.
// Nil and empty fields leave the document value in place.
type Overrides struct {
	MinAge       *int   `env:"VALIDATION_MIN_AGE"`
	MaxAge       *int   `env:"VALIDATION_MAX_AGE"`
	PhonePattern string `env:"VALIDATION_PHONE_PATTERN"`
}

// IsZero reports whether o changes nothing.
func (o Overrides) IsZero() bool {
	return o.MinAge == nil && o.MaxAge == nil && o.PhonePattern == ""
}

// WithOverrides returns a copy of s with o applied. The receiver is not modified.
func (s *Site) WithOverrides(o Overrides) (*Site, error) {
	c := s.clone()
	if o.MinAge != nil {
		c.Validation.MinAge = *o.MinAge
	}
	if o.MaxAge != nil {
		c.Validation.MaxAge = *o.MaxAge
	}
	if o.PhonePattern != "" {
		c.Validation.Phone = o.PhonePattern
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Site) clone() *Site {
	c := *s
	c.Constituencies = s.ConstituencyList()
	c.Leadership = s.LeadershipRoster()
	c.EventCategories = s.EventCategoryList()
	c.Features = s.FeatureFlags()
	c.Forms = make(map[string]Form, len(s.Forms))
	for name := range s.Forms {
		c.Forms[name], _ = s.Form(name)
	}
	c.API.Endpoints = maps.Clone(s.API.Endpoints)
	c.UI.AllowedFileTypes = slices.Clone(s.UI.AllowedFileTypes)
	return &c
}
