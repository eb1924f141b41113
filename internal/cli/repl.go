package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordlookup/internal/controller"
	"github.com/heartmarshall/wordlookup/internal/domain"
	"github.com/heartmarshall/wordlookup/internal/render/terminal"
)

func newReplCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive lookup session",
		Long: `Repl reads words from standard input and looks each one up.

Commands inside the session:
  <word>     look the word up
  <number>   look up the related word or recent search printed as [number]
  :play      play the pronunciation of the current entry
  :history   show recent searches
  :clear     clear recent searches
  :q         quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(cmd.Context(), root)
			if err != nil {
				return err
			}
			defer a.Close()

			return runRepl(cmd.Context(), a.Controller, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runRepl(ctx context.Context, ctrl *controller.Controller, in io.Reader, out io.Writer) error {
	p := terminal.New(out)
	ctrl.Start(ctx, p)
	defer ctrl.WaitAudio()

	fmt.Fprintf(out, "%s\n> ", ctrl.Placeholder())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case ":q", ":quit", "exit":
			return nil
		case ":play":
			if !ctrl.PlayAudio(ctx) {
				fmt.Fprintln(out, "No pronunciation available.")
			}
		case ":history":
			p.ShowHistory(ctrl.History())
		case ":clear":
			ctrl.ClearHistory(ctx, p)
		default:
			if err := dispatch(ctx, ctrl, p, line); err != nil {
				return err
			}
		}

		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

// dispatch looks up line, or the token it numbers. Lookup failures were
// already shown by the presenter and are not returned.
func dispatch(ctx context.Context, ctrl *controller.Controller, p *terminal.Presenter, line string) error {
	var err error
	if n, convErr := strconv.Atoi(line); convErr == nil {
		if token, ok := p.Token(n); ok {
			err = ctrl.SelectWord(ctx, p, token)
		} else {
			err = ctrl.Search(ctx, p, line)
		}
	} else {
		err = ctrl.Search(ctx, p, line)
	}

	if err == nil || errors.Is(err, domain.ErrEmptyQuery) || errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}
