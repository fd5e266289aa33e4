package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/edudesk/faqbot/internal/config"
	"github.com/edudesk/faqbot/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP chat server",
	Long: `Serve starts the chat server configured from the environment
(FAQBOT_PORT, FAQBOT_LOG_FILE, FAQBOT_CONTEXT_STORE, SURREALDB_*).
Endpoints: POST /chat, POST /reset, GET /ws, GET /health, GET /stats.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger, cleanup := config.NewLogger(cfg)
	defer cleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, cfg, logger)
}
