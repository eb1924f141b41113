package cli

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordlookup/internal/render"
	"github.com/heartmarshall/wordlookup/internal/render/terminal"
)

type defineOptions struct {
	json bool
	play bool
}

func newDefineCmd(root *rootOptions) *cobra.Command {
	opts := &defineOptions{}

	cmd := &cobra.Command{
		Use:   "define <word>",
		Short: "Look up a word and print its entry",
		Long: `Define looks the word up, prints the entry and records it in the recent
searches. Multi-word entries may be passed as several arguments.

Example:
  wordlookup define hello
  wordlookup define ice cream --json
  wordlookup define serendipity --play`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := bootstrap(ctx, root)
			if err != nil {
				return err
			}
			defer a.Close()

			ctrl := a.Controller
			ctrl.Start(ctx, &render.Snapshot{})

			var snap render.Snapshot
			if err := ctrl.Search(ctx, &snap, strings.Join(args, " ")); err != nil {
				if snap.Message != "" {
					return errors.New(snap.Message)
				}
				return err
			}

			out := cmd.OutOrStdout()
			if opts.json {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(snap.View); err != nil {
					return err
				}
			} else {
				terminal.New(out).ShowResults(*snap.View)
			}

			if opts.play && ctrl.PlayAudio(ctx) {
				ctrl.WaitAudio()
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "print the entry as JSON")
	cmd.Flags().BoolVar(&opts.play, "play", false, "play the pronunciation, if any")
	return cmd
}
