// Command testrail-mcp runs the TestRail MCP server.
//
// Connection settings come from the environment (TESTRAIL_URL,
// TESTRAIL_USERNAME, TESTRAIL_API_KEY); a .env file in the working
// directory is loaded when present. The server speaks MCP over stdio by
// default, or streamable HTTP with --http.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/qaops/testrail-mcp/internal/config"
	"github.com/qaops/testrail-mcp/internal/logging"
	"github.com/qaops/testrail-mcp/internal/testrail"
	"github.com/qaops/testrail-mcp/internal/tools"
)

// Version is set at build time.
var Version = "0.1.0"

var httpAddr string

var rootCmd = &cobra.Command{
	Use:          "testrail-mcp",
	Short:        "MCP server for the TestRail API",
	Long:         "testrail-mcp exposes the TestRail REST API as MCP tools.\nRequires TESTRAIL_URL, TESTRAIL_USERNAME and TESTRAIL_API_KEY in the environment.",
	Version:      Version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine; the environment itself may be configured.
		_ = godotenv.Load()

		cfg, err := config.FromEnv()
		if err != nil {
			return err
		}

		logging.Init(logging.Config{
			Level:  logging.ParseLevel(cfg.LogLevel),
			Pretty: cfg.LogPretty,
		})

		client := testrail.NewClient(cfg.BaseURL, cfg.Username, cfg.APIKey,
			testrail.WithTimeout(cfg.Timeout))

		s := server.NewMCPServer(
			"testrail-mcp",
			Version,
			server.WithToolCapabilities(true),
		)
		tools.NewRegistry(client).Register(s)

		if httpAddr != "" {
			logging.Info().Str("addr", httpAddr).Msg("serving MCP over HTTP")
			return server.NewStreamableHTTPServer(s).Start(httpAddr)
		}

		logging.Info().Str("url", cfg.BaseURL).Msg("serving MCP over stdio")
		return server.ServeStdio(s)
	},
}

func init() {
	rootCmd.Flags().StringVar(&httpAddr, "http", "", "Serve MCP over streamable HTTP on this address instead of stdio")
	rootCmd.SetVersionTemplate(fmt.Sprintf("testrail-mcp %s\n", Version))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
