package cmd

import (
	"context"
	"fmt"
	"os"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/figwing/figwing/figma"
	"github.com/figwing/figwing/internal/cache"
	"github.com/figwing/figwing/internal/extract"
	"github.com/figwing/figwing/internal/session"
	"github.com/figwing/figwing/internal/tokens"
	"github.com/figwing/figwing/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI tool integration",
	Long: `Start a Model Context Protocol (MCP) server that exposes Figma design
data to AI coding tools over stdin/stdout.

Tools provided:
- Extracting components and full implementation specifications
- Listing components with kind/name filters
- Synthesizing design tokens from styles and variables
- Detecting component changes since a sync point
- Tracking a working file and per-component implementation status

Requires a Figma personal access token via FIGMA_ACCESS_TOKEN,
FIGWING_FIGMA_TOKEN, or the figma.token config key.

The server runs until the client disconnects.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServer(ctx context.Context) error {
	cfg := GetConfig()
	if cfg.Figma.Token == "" {
		return fmt.Errorf("no Figma token configured: set FIGMA_ACCESS_TOKEN, FIGWING_FIGMA_TOKEN, or figma.token")
	}

	// stdout carries the MCP protocol; every log line goes to stderr.
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: false})
	if viper.GetBool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}

	mcp.ConfigureHooks(mcp.Hooks{
		LogInfo:  func(msg string) { log.Info(msg) },
		LogError: func(err error) { log.WithError(err).Error("tool failed") },
		LogToolCall: func(tool string, args interface{}) {
			log.WithFields(logrus.Fields{"tool": tool, "args": fmt.Sprintf("%+v", args)}).Debug("tool call")
		},
		GetVersion: func() string { return version },
	})

	api := figma.NewHTTPClient(cfg.Figma, log)
	store := cache.NewMemory(cfg.Cache.MaxEntries, cfg.Cache.DefaultTTL)
	extractSvc := extract.NewService(api, store, log)
	tokenSvc := tokens.NewService(api, store, log)
	tracker := session.NewTracker(cfg.Session.TTL)

	impl := &mcpsdk.Implementation{
		Name:    "figwing-mcp",
		Version: version,
	}
	server := mcpsdk.NewServer(impl, &mcpsdk.ServerOptions{})

	mcp.RegisterCoreTools(server, extractSvc, tokenSvc, tracker, store, cfg.Cache.MaxEntries)

	log.WithField("version", version).Info("MCP server starting on stdio")
	if err := server.Run(ctx, mcpsdk.NewStdioTransport()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}
