package cli

import (
	"github.com/spf13/cobra"

	"github.com/hirakinii/osf-api-mcp/internal/config"
)

func StatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print index statistics for the loaded specification",
		RunE:  runStats,
	}

	config.BindFlags(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	engine, err := buildEngine(cmd, cfg)
	if err != nil {
		return err
	}

	stats := engine.Stats()
	cmd.Printf("Paths:              %d\n", stats.Paths)
	cmd.Printf("Operations:         %d\n", stats.Operations)
	cmd.Printf("Tags:               %d\n", stats.Tags)
	cmd.Printf("Schema names:       %d\n", stats.SchemaNames)
	cmd.Printf("Property names:     %d\n", stats.Properties)
	cmd.Printf("Fulltext documents: %d\n", stats.Documents)
	cmd.Printf("Fulltext tokens:    %d\n", stats.Tokens)

	return nil
}
