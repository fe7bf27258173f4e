package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/myinvois-gateway/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for building, validating and submitting documents.

The API provides endpoints for:
  - POST /api/v1/documents/build     - Build submission artifacts
  - POST /api/v1/documents/validate  - Validate a payload
  - POST /api/v1/documents/submit    - Submit to the MyInvois API
  - GET  /api/v1/documenttypes       - List document types
  - GET  /api/v1/notifications       - List taxpayer notifications
  - GET  /api/v1/taxpayer/validate/:tin - Validate a TIN
  - GET  /api/v1/taxpayer/search     - Search a TIN
  - GET  /health                     - Health check
  - GET  /metrics                    - Prometheus metrics

Examples:
  # Start server on default port
  myinvois-gateway serve

  # Start on custom port with API credentials
  myinvois-gateway serve --address :8080 --client-id <id> --client-secret <secret>

  # Start in debug mode
  myinvois-gateway serve --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 2*time.Minute, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	config := &server.Config{
		Address:      serverAddr,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		APIBaseURL:   apiBaseURL,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
	}

	srv := server.NewServer(config)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	fmt.Printf("Starting server on %s\n", serverAddr)
	if clientID != "" && clientSecret != "" {
		fmt.Println("MyInvois submission enabled")
	} else {
		fmt.Println("MyInvois submission disabled (no credentials)")
	}

	return srv.Run()
}
