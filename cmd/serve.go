package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing uidrive tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes script
checking, script running, window listing, and element waiting as tools.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  uidrive serve
  uidrive serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	cfg := MCPConfig{
		Transport: transport,
		Port:      port,
	}

	srv, err := newMCPServer()
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	return srv.serve(cfg)
}
