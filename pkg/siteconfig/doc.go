// Package siteconfig holds the static site data of the association portal:
// organization details, constituencies, leadership roster, event categories,
// form definitions, validation settings and user-facing messages.
//
// The canonical document is embedded in the binary and parsed by Default.
// Deployments may point SITE_CONFIG_PATH at a replacement file read with
// LoadFile. Either way the result is validated once and treated as read-only.
//
//	site, err := siteconfig.Default()
//	if err != nil {
//	    return err
//	}
//	cfg, err := site.ValidationConfig()
//	required, err := site.RequiredFields(siteconfig.FormRegistration)
//
// Validation settings may be overridden from the environment with
// VALIDATION_MIN_AGE, VALIDATION_MAX_AGE and VALIDATION_PHONE_PATTERN:
//
//	var o siteconfig.Overrides
//	config.MustLoad(&o)
//	site, err = site.WithOverrides(o)
package siteconfig
