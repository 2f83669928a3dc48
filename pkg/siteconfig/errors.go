package siteconfig

import "errors"

var (
	ErrInvalidSite      = errors.New("invalid site configuration")
	ErrUnknownForm      = errors.New("unknown form type")
	ErrFailedToParse    = errors.New("failed to parse site configuration")
	ErrFailedToReadFile = errors.New("failed to read site configuration file")
)
