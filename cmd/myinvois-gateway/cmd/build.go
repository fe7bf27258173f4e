package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/myinvois-gateway/pkg/einvoice"
)

var rawOutput bool

var buildCmd = &cobra.Command{
	Use:   "build [files...]",
	Short: "Build submission artifacts from invoice payloads",
	Long: `Build one or more flat invoice payloads into MyInvois submission artifacts:
the canonical UBL-style JSON document, its SHA-256 hash and the base64
transport encoding.

Examples:
  myinvois-gateway build invoice.json
  myinvois-gateway build invoice.json --raw > document.json
  myinvois-gateway build *.json -o artifacts.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().BoolVar(&rawOutput, "raw", false, "Print only the canonical document JSON")
}

func runBuild(cmd *cobra.Command, args []string) error {
	proc := einvoice.NewProcessor()

	docs := make([]*einvoice.Document, 0, len(args))
	for _, file := range args {
		printVerbose("building %s\n", file)

		in, err := readInput(file)
		if err != nil {
			return err
		}

		doc, err := proc.Prepare(*in)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		docs = append(docs, doc)
	}

	if rawOutput {
		for _, doc := range docs {
			fmt.Println(string(doc.Canonical))
		}
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if len(docs) == 1 {
		return encoder.Encode(docs[0])
	}
	return encoder.Encode(docs)
}

func readInput(file string) (*einvoice.Input, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	var in einvoice.Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file, err)
	}
	return &in, nil
}
