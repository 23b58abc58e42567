package scopes

import (
	"github.com/spf13/cobra"
	"github.com/walteh/semhl/pkg/highlight"
)

// NewScopesCommand prints the kind-to-display-scope table advertised in
// the server capabilities, in kind ordinal order.
func NewScopesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scopes",
		Short: "print the highlighting kind to display scope table",
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		for i, scopes := range highlight.Scopes() {
			kind := highlight.Kind(i)
			cmd.Printf("%-3d %-18s %s\n", i, kind, scopes[0])
		}
		return nil
	}

	return cmd
}
