package cli

import "github.com/spf13/cobra"

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "osf-api-mcp",
		Short:   "MCP server for querying the OSF API specification",
		Version: "0.1.0",

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(ServeCommand())
	root.AddCommand(StatsCommand())

	return root
}
