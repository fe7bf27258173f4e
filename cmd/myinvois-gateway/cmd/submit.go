package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/myinvois-gateway/internal/myinvois"
	"github.com/rezonia/myinvois-gateway/pkg/einvoice"
)

var submitTimeout time.Duration

var submitCmd = &cobra.Command{
	Use:   "submit [files...]",
	Short: "Submit invoice payloads to the MyInvois API",
	Long: `Build, validate and submit one or more invoice payloads as a single
documentsubmissions batch.

Requires API credentials via --client-id/--client-secret or the
MYINVOIS_CLIENT_ID/MYINVOIS_CLIENT_SECRET environment variables. Without
--base-url the sandbox environment is used.

Examples:
  myinvois-gateway submit invoice.json
  myinvois-gateway submit jan/*.json --base-url https://api.myinvois.hasil.gov.my`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.Flags().DurationVar(&submitTimeout, "timeout", 60*time.Second, "Submission timeout")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	proc := einvoice.NewProcessor(einvoice.WithClient(client))

	inputs := make([]einvoice.Input, 0, len(args))
	for _, file := range args {
		in, err := readInput(file)
		if err != nil {
			return err
		}
		inputs = append(inputs, *in)
	}

	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()

	printVerbose("submitting %d document(s)\n", len(inputs))
	result, err := proc.Submit(ctx, inputs...)

	var rerr *myinvois.RejectionError
	if err != nil && !errors.As(err, &rerr) {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if encodeErr := encoder.Encode(result); encodeErr != nil {
		return encodeErr
	}

	if rerr != nil {
		return fmt.Errorf("%d document(s) rejected", len(rerr.Rejected))
	}
	return nil
}

func newClient() (*myinvois.Client, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("API credentials required (--client-id/--client-secret or MYINVOIS_CLIENT_ID/MYINVOIS_CLIENT_SECRET)")
	}

	opts := []myinvois.ClientOption{}
	if apiBaseURL != "" {
		opts = append(opts, myinvois.WithBaseURL(apiBaseURL))
	}
	return myinvois.NewClient(clientID, clientSecret, opts...), nil
}
