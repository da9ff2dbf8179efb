package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chromasynth/go-seadream/internal/server"
)

// Serve command flags
var (
	servePort    int
	serveHost    string
	serveDataDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the backend API server",
	Long: `Run the prompt generation backend. The server exposes:

  POST /generate                   generate prompts for a brief
  GET  /history                    all generated sessions
  GET  /references                 liked sessions only
  POST /history/{id}/like          toggle the liked flag
  GET  /metrics                    Prometheus metrics

Session history is persisted as JSON under the data directory.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8000, "port to listen on (0 for auto-assign)")
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "host to bind to")
	serveCmd.Flags().StringVar(&serveDataDir, "data", "data", "directory for the session history file")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.NewHTTPServer(server.Config{
		Host:    serveHost,
		Port:    servePort,
		DataDir: serveDataDir,
	})

	fmt.Printf("seadream backend listening on http://%s:%d\n", serveHost, servePort)
	return srv.ListenAndServe(ctx)
}
