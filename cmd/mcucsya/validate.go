package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mcucsya/portal/modules/membership"
	"github.com/mcucsya/portal/pkg/binder"
	"github.com/mcucsya/portal/pkg/form"
	"github.com/mcucsya/portal/pkg/siteconfig"
)

var errRecordInvalid = errors.New("record failed validation")

// validationReport is the printed form of a Result.
type validationReport struct {
	Form    string               `json:"form"`
	IsValid bool                 `json:"isValid"`
	Errors  map[string]string    `json:"errors"`
	Kinds   map[string]form.Kind `json:"kinds,omitempty"`
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Validate a JSON record against a form of the site config",
		Description: `Reads one flat JSON object and runs it through the same checks as the
web forms, without the duplicate lookups. The result is printed as JSON and
the command exits with status 1 when the record is invalid.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "form",
				Aliases: []string{"t"},
				Value:   siteconfig.FormRegistration,
				Usage:   "form type (registration, contact)",
			},
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    `record file path, "-" for stdin`,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			appCfg, err := loadAppConfig()
			if err != nil {
				return err
			}
			site, err := loadSite(appCfg)
			if err != nil {
				return err
			}

			rec, err := readRecord(cmd.String("file"), cmd.Root().Reader)
			if err != nil {
				return err
			}

			report, err := validateRecord(site, cmd.String("form"), rec)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.Root().Writer)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			if !report.IsValid {
				return errRecordInvalid
			}
			return nil
		},
	}
}

func readRecord(path string, stdin io.Reader) (form.Record, error) {
	if path == "-" {
		return binder.DecodeJSONRecord(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open record: %w", err)
	}
	defer f.Close()
	return binder.DecodeJSONRecord(f)
}

func validateRecord(site *siteconfig.Site, formType string, rec form.Record) (validationReport, error) {
	cfg, err := site.ValidationConfig()
	if err != nil {
		return validationReport{}, err
	}
	_, res, err := membership.Validate(site, form.New(cfg), formType, rec)
	if err != nil {
		return validationReport{}, fmt.Errorf("validate %q: %w", formType, err)
	}

	report := validationReport{
		Form:    formType,
		IsValid: res.IsValid,
		Errors:  res.Errors,
	}
	if report.Errors == nil {
		report.Errors = map[string]string{}
	}
	for _, field := range res.Fields() {
		if kind, ok := res.Kind(field); ok {
			if report.Kinds == nil {
				report.Kinds = make(map[string]form.Kind)
			}
			report.Kinds[field] = kind
		}
	}
	return report, nil
}
