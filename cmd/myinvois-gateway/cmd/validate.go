package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/myinvois-gateway/pkg/einvoice"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate invoice payloads",
	Long: `Validate one or more flat invoice payloads against the MyInvois field rules.

Checks performed:
  - Required sections and fields
  - Code list membership (currency, country, state, tax type, UoM, ...)
  - Formats (dates, times, phone numbers, email addresses)
  - Scheme-dependent identification length limits
  - Field length caps

All violations are collected; validation never stops at the first error.

Examples:
  myinvois-gateway validate invoice.json
  myinvois-gateway validate *.json -f table`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// ValidationResult holds the result of validating a single file
type ValidationResult struct {
	File       string                `json:"file"`
	Valid      bool                  `json:"valid"`
	Violations []einvoice.FieldError `json:"violations,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	proc := einvoice.NewProcessor()

	results := make([]*ValidationResult, 0, len(args))
	allValid := true

	for _, file := range args {
		printVerbose("validating %s\n", file)

		result := &ValidationResult{File: file, Valid: true}
		in, err := readInput(file)
		if err != nil {
			result.Valid = false
			result.Violations = []einvoice.FieldError{{
				Path: "input", Rule: "input", Message: err.Error(),
			}}
			results = append(results, result)
			allValid = false
			continue
		}

		violations := proc.Validate(*in)
		if len(violations) > 0 {
			result.Valid = false
			result.Violations = violations
			allValid = false
		}
		results = append(results, result)
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Printf("✓ %s: VALID\n", r.File)
				continue
			}
			fmt.Printf("✗ %s: INVALID\n", r.File)
			for _, v := range r.Violations {
				fmt.Printf("  - %s: %s\n", v.Path, v.Message)
			}
		}
	}

	if !allValid {
		return fmt.Errorf("validation failed for some files")
	}
	return nil
}
