package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordlookup/internal/render"
)

func newHistoryCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear recent searches",
		Args:  cobra.NoArgs,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print recent searches, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(cmd.Context(), root)
			if err != nil {
				return err
			}
			defer a.Close()

			words := a.History.Load(cmd.Context())
			out := cmd.OutOrStdout()
			if len(words) == 0 {
				fmt.Fprintln(out, "No recent searches")
				return nil
			}
			for _, w := range words {
				fmt.Fprintln(out, w)
			}
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget all recent searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(cmd.Context(), root)
			if err != nil {
				return err
			}
			defer a.Close()

			a.Controller.Start(cmd.Context(), &render.Snapshot{})
			a.Controller.ClearHistory(cmd.Context(), &render.Snapshot{})
			fmt.Fprintln(cmd.OutOrStdout(), "Recent searches cleared.")
			return nil
		},
	}

	cmd.AddCommand(listCmd, clearCmd)
	cmd.RunE = listCmd.RunE
	return cmd
}
