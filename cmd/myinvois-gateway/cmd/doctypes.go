package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	docTypeID        int
	docTypeVersionID int
)

var doctypesCmd = &cobra.Command{
	Use:   "doctypes",
	Short: "List MyInvois document types",
	Long: `Query the MyInvois documenttypes endpoints.

Examples:
  # List all document types
  myinvois-gateway doctypes

  # Fetch one document type
  myinvois-gateway doctypes --id 45

  # Fetch one schema version of a document type
  myinvois-gateway doctypes --id 45 --version-id 41235`,
	RunE: runDoctypes,
}

func init() {
	rootCmd.AddCommand(doctypesCmd)

	doctypesCmd.Flags().IntVar(&docTypeID, "id", 0, "Document type ID")
	doctypesCmd.Flags().IntVar(&docTypeVersionID, "version-id", 0, "Document type version ID (requires --id)")
}

func runDoctypes(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var out any
	switch {
	case docTypeID > 0 && docTypeVersionID > 0:
		out, err = client.DocumentTypeVersion(ctx, docTypeID, docTypeVersionID)
	case docTypeID > 0:
		out, err = client.DocumentType(ctx, docTypeID)
	case docTypeVersionID > 0:
		return fmt.Errorf("--version-id requires --id")
	default:
		out, err = client.DocumentTypes(ctx)
	}
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
