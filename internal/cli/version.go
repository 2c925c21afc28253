package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wanderkit/tripdesk/internal/version"
)

// NewVersionCmd creates the 'version' command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tripdesk %s\n", version.GetVersion())
		},
	}
}
