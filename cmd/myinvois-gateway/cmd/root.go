package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	clientID     string
	clientSecret string
	apiBaseURL   string
)

var rootCmd = &cobra.Command{
	Use:   "myinvois-gateway",
	Short: "Build, validate and submit Malaysia MyInvois e-invoices",
	Long: `MyInvois Gateway is a CLI tool for the Malaysia MyInvois (LHDN) e-invoicing API.

Supports:
  - Building UBL-style JSON documents from a flat invoice payload
  - Validating documents against the MyInvois field rules and code lists
  - Canonicalizing, hashing and base64-encoding documents for submission
  - Submitting documents and querying document types

Examples:
  # Build a document and print the submission artifacts
  myinvois-gateway build invoice.json

  # Validate one or more payloads
  myinvois-gateway validate invoice.json

  # Submit to the sandbox environment
  myinvois-gateway submit invoice.json --client-id <id> --client-secret <secret>

  # List document types
  myinvois-gateway doctypes`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, table)")
	rootCmd.PersistentFlags().StringVar(&clientID, "client-id", "", "MyInvois client ID (env: MYINVOIS_CLIENT_ID)")
	rootCmd.PersistentFlags().StringVar(&clientSecret, "client-secret", "", "MyInvois client secret (env: MYINVOIS_CLIENT_SECRET)")
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "base-url", "", "MyInvois API base URL (env: MYINVOIS_BASE_URL, default sandbox)")

	// Load from environment variables if not set via flags
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if clientID == "" {
		clientID = os.Getenv("MYINVOIS_CLIENT_ID")
	}
	if clientSecret == "" {
		clientSecret = os.Getenv("MYINVOIS_CLIENT_SECRET")
	}
	if apiBaseURL == "" {
		apiBaseURL = os.Getenv("MYINVOIS_BASE_URL")
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
