package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// uuidCommand constructs the 'uuid' subcommand that prints random version-4
// UUIDs, one per line.
func uuidCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generates random version-4 UUIDs",
		Run: func(cmd *cobra.Command, args []string) {
			count, _ := cmd.Flags().GetInt("count")

			for i := 0; i < count; i++ {
				fmt.Println(uuid.New().String()) //nolint: forbidigo
			}
		},
	}

	cmd.Flags().Int("count", 1, "Number of UUIDs to generate")

	return cmd
}
