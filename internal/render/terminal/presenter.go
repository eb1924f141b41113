// Package terminal draws lookup results on a text terminal. Related words and
// recent searches are numbered so a REPL can re-enter the lookup by number.
package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/wordlookup/internal/render"
)

var (
	wordStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	phoneticStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
	posStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	exampleStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
	labelStyle    = lipgloss.NewStyle().Bold(true)
	tokenStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	mutedStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
)

// Presenter writes each state to out. Safe for concurrent use.
type Presenter struct {
	mu     sync.Mutex
	out    io.Writer
	tokens []string
}

// New creates a Presenter writing to out.
func New(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

// ShowIdle prints the prompt hint.
func (p *Presenter) ShowIdle() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tokens = nil
	fmt.Fprintln(p.out, mutedStyle.Render("Type a word to look it up, a number to follow a related word, :play for audio, :q to quit."))
}

// ShowLoading prints a progress line.
func (p *Presenter) ShowLoading() {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, mutedStyle.Render("Searching..."))
}

// ShowError prints msg.
func (p *Presenter) ShowError(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tokens = nil
	fmt.Fprintln(p.out, errorStyle.Render(msg))
}

// ShowResults prints the entry and renumbers the clickable tokens.
func (p *Presenter) ShowResults(v render.View) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tokens = p.tokens[:0]
	var b strings.Builder

	b.WriteString(wordStyle.Render(v.Word))
	if v.Phonetic != "" {
		b.WriteString("  " + phoneticStyle.Render(v.Phonetic))
	}
	if v.HasAudio {
		b.WriteString("  " + mutedStyle.Render("♪ :play"))
	}
	b.WriteString("\n")

	for _, m := range v.Meanings {
		b.WriteString("\n" + posStyle.Render(m.PartOfSpeech) + "\n")
		for _, d := range m.Definitions {
			fmt.Fprintf(&b, "  %d. %s\n", d.Number, d.Text)
			if d.Example != "" {
				b.WriteString("     " + exampleStyle.Render(`Example: "`+d.Example+`"`) + "\n")
			}
		}
		p.writeRelated(&b, "Synonyms:", m.Synonyms, m.SynonymsTotal)
		p.writeRelated(&b, "Antonyms:", m.Antonyms, m.AntonymsTotal)
	}

	if v.ShowEtymology {
		b.WriteString("\n" + labelStyle.Render("Etymology") + "\n  " + v.Etymology + "\n")
	}

	fmt.Fprint(p.out, b.String())
}

// ShowHistory prints the recent searches as numbered tokens following the
// ones of the current result.
func (p *Presenter) ShowHistory(words []string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(words) == 0 {
		fmt.Fprintln(p.out, mutedStyle.Render("No recent searches"))
		return
	}

	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, p.token(w))
	}
	fmt.Fprintln(p.out, labelStyle.Render("Recent:")+" "+strings.Join(parts, "  "))
}

// Token returns the word printed as [n].
func (p *Presenter) Token(n int) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n < 1 || n > len(p.tokens) {
		return "", false
	}
	return p.tokens[n-1], true
}

func (p *Presenter) writeRelated(b *strings.Builder, label string, words []string, total int) {
	if len(words) == 0 {
		return
	}
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, p.token(w))
	}
	line := "  " + labelStyle.Render(label) + " " + strings.Join(parts, "  ")
	if more := total - len(words); more > 0 {
		line += mutedStyle.Render(fmt.Sprintf(" (+%d more)", more))
	}
	b.WriteString(line + "\n")
}

// token registers w and returns its printed form. Caller holds p.mu.
func (p *Presenter) token(w string) string {
	p.tokens = append(p.tokens, w)
	return tokenStyle.Render(fmt.Sprintf("[%d] %s", len(p.tokens), w))
}
