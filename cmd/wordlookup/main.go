// Command wordlookup looks up English words in the Free Dictionary API,
// with a built-in fallback for a handful of common words.
//
// Subcommands:
//
//	define <word>   print one entry
//	repl            interactive session
//	serve           browser UI, JSON API and metrics on localhost
//	history         list or clear recent searches
//	version         build information
//
// Exit codes: 0 = success, 1 = error (including "word not found").
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/wordlookup/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
