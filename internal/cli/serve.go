package cli

import (
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hirakinii/osf-api-mcp/internal/config"
	"github.com/hirakinii/osf-api-mcp/internal/index"
	"github.com/hirakinii/osf-api-mcp/internal/loader"
	"github.com/hirakinii/osf-api-mcp/internal/mcp"
)

func ServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the OSF API specification and serve MCP tools",
		RunE:  runServe,
	}

	config.BindFlags(cmd)

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	engine, err := buildEngine(cmd, cfg)
	if err != nil {
		return err
	}

	stats := engine.Stats()
	log.Printf("indexed %d paths, %d operations, %d tags, %d fulltext documents",
		stats.Paths, stats.Operations, stats.Tags, stats.Documents)

	server, err := mcp.NewServer(engine)
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	switch cfg.Transport {
	case "http":
		log.Printf("serving MCP over http on %s", cfg.Addr)
		return server.RunHTTP(ctx, cfg.Addr)
	default:
		log.Printf("serving MCP over stdio")
		return server.Run(ctx)
	}
}

// buildEngine runs the load step: read and parse the spec file, optionally
// validate it, transform it into the document model and build the indexes.
// Any failure here means no resolver ever becomes callable.
func buildEngine(cmd *cobra.Command, cfg *config.Config) (*index.Engine, error) {
	result, err := loader.LoadFile(cfg.Spec)
	if err != nil {
		return nil, fmt.Errorf("loading spec: %w", err)
	}

	for _, w := range result.Warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}

	if cfg.ValidateSpec {
		if err := result.Validate(); err != nil {
			return nil, err
		}
	}

	spec, err := loader.Transform(result)
	if err != nil {
		return nil, fmt.Errorf("transforming spec: %w", err)
	}

	cmd.PrintErrf("Loaded OpenAPI %s: %s v%s\n", result.Version, spec.Info.Title, spec.Info.Version)

	engine, err := index.Build(spec)
	if err != nil {
		return nil, fmt.Errorf("building indexes: %w", err)
	}

	return engine, nil
}
