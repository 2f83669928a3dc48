package siteconfig

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/mcucsya/portal/pkg/validator"
)

//go:embed site.yaml
var defaultDocument []byte

// Default parses the embedded site document. Each call returns a fresh value.
func Default() (*Site, error) {
	return Load(bytes.NewReader(defaultDocument))
}

// LoadFile parses the site document at path.
func LoadFile(path string) (*Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses a YAML site document. Unknown keys are rejected.
func Load(r io.Reader) (*Site, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Site
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Site) validate() error {
	var errs []error

	v := s.Validation
	if v.MinAge < 0 || v.MaxAge < 0 || v.MinAge > v.MaxAge {
		errs = append(errs, fmt.Errorf("validation age range %d..%d", v.MinAge, v.MaxAge))
	}
	for name, pattern := range map[string]string{"email": v.Email, "phone": v.Phone, "name": v.Name} {
		if pattern == "" {
			continue
		}
		if _, err := regexp.Compile(pattern); err != nil {
			errs = append(errs, fmt.Errorf("validation.%s: %w", name, err))
		}
	}

	for _, formType := range []string{FormRegistration, FormContact} {
		if _, ok := s.Forms[formType]; !ok {
			errs = append(errs, fmt.Errorf("forms.%s is not declared", formType))
		}
	}

	seen := make(map[string]bool, len(s.Constituencies))
	for _, c := range s.Constituencies {
		if c.ID == "" || seen[c.ID] {
			errs = append(errs, fmt.Errorf("constituency id %q is empty or duplicated", c.ID))
		}
		seen[c.ID] = true
	}

	if s.UI.ItemsPerPage < 0 {
		errs = append(errs, errors.New("ui.itemsPerPage must not be negative"))
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidSite}, errs...)...)
	}
	return nil
}

// ValidationConfig compiles the validation settings and error messages
// into the configuration consumed by the form engine.
func (s *Site) ValidationConfig() (validator.Config, error) {
	m := s.Messages.Error
	cfg, err := validator.NewConfig(validator.ConfigParams{
		EmailPattern: s.Validation.Email,
		PhonePattern: s.Validation.Phone,
		NamePattern:  s.Validation.Name,
		MinAge:       s.Validation.MinAge,
		MaxAge:       s.Validation.MaxAge,
		Messages: validator.Messages{
			Required:         m.Required,
			InvalidEmail:     m.InvalidEmail,
			InvalidPhone:     m.InvalidPhone,
			InvalidFirstName: m.InvalidFirstName,
			InvalidLastName:  m.InvalidLastName,
			AgeOutOfRange:    m.AgeOutOfRange,
		},
	})
	if err != nil {
		return validator.Config{}, errors.Join(ErrInvalidSite, err)
	}
	return cfg, nil
}
