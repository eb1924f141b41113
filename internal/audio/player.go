// Package audio plays pronunciation recordings through an external program.
package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/heartmarshall/wordlookup/internal/config"
)

// ErrNoCommand is returned when an ExecPlayer is configured without a program.
var ErrNoCommand = errors.New("audio: empty player command")

// Player plays the recording at url. Play blocks until playback finishes;
// callers wanting fire-and-forget run it on their own goroutine.
type Player interface {
	Play(ctx context.Context, url string) error
}

// New returns the player described by cfg. An empty command or "none"
// disables audio.
func New(cfg config.AudioConfig, logger *slog.Logger) (Player, error) {
	if cmd := strings.TrimSpace(cfg.Player); cmd == "" || cmd == "none" {
		return Noop{}, nil
	}
	return NewExecPlayer(cfg.Player, logger)
}

// ExecPlayer runs a command line with the URL appended as the last argument,
// e.g. "mpv --no-video" or "ffplay -nodisp -autoexit".
type ExecPlayer struct {
	name string
	args []string
	log  *slog.Logger
}

// NewExecPlayer parses command into program and arguments.
func NewExecPlayer(command string, logger *slog.Logger) (*ExecPlayer, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, ErrNoCommand
	}
	return &ExecPlayer{
		name: fields[0],
		args: fields[1:],
		log:  logger.With("adapter", "audio"),
	}, nil
}

// Play runs the player and waits for it to exit.
func (p *ExecPlayer) Play(ctx context.Context, url string) error {
	args := append(append([]string(nil), p.args...), url)
	cmd := exec.CommandContext(ctx, p.name, args...)

	p.log.DebugContext(ctx, "starting playback", slog.String("player", p.name), slog.String("url", url))

	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("audio: play %s: %w: %s", p.name, err, msg)
		}
		return fmt.Errorf("audio: play %s: %w", p.name, err)
	}
	return nil
}

// Noop ignores playback requests.
type Noop struct{}

// Play does nothing.
func (Noop) Play(context.Context, string) error { return nil }
