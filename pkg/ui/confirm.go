// Package ui holds the interactive pieces of the CLI. Prompts render on stderr so
// stdout stays reserved for data.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"
	"github.com/mattn/go-isatty"

	errUtils "github.com/cloudposse/ekscli/errors"
	log "github.com/cloudposse/ekscli/pkg/logger"
	"github.com/cloudposse/ekscli/pkg/perf"
)

// PromptFunc asks a yes/no question and returns the answer.
type PromptFunc func(ctx context.Context, title, description string) (bool, error)

// Confirmer gates destructive operations behind an explicit yes.
type Confirmer struct {
	// Interactive reports whether a prompt can be shown.
	Interactive func() bool
	// Prompt shows the question.
	Prompt PromptFunc
}

// NewConfirmer returns a Confirmer backed by the terminal.
func NewConfirmer() *Confirmer {
	return &Confirmer{Interactive: IsInteractive, Prompt: huhPrompt}
}

// IsInteractive reports whether both stdin and stderr are attached to a terminal.
func IsInteractive() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stderr.Fd())
}

// IsColorTerminal reports whether w is a terminal that accepts colour. NO_COLOR disables colour.
func IsColorTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f.Fd()) && os.Getenv("NO_COLOR") == ""
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Confirm asks before running the named operation. force skips the question.
// Outside a terminal it refuses unless forced.
func (c *Confirmer) Confirm(ctx context.Context, operation, summary string, force bool) error {
	defer perf.Track(nil, "ui.Confirmer.Confirm")()

	if force {
		log.Debug("Confirmation skipped", "operation", operation)
		return nil
	}

	if !c.Interactive() {
		return errUtils.Build(fmt.Errorf("%w: %s modifies remote state", errUtils.ErrConfirmationRequired, operation)).
			WithExplanation("Operations that modify remote state ask for confirmation on the terminal. " +
				"Stdin or stderr is not a terminal here, so the prompt cannot be shown.").
			WithHint("Pass --force to run it without an interactive terminal").
			Err()
	}

	ok, err := c.Prompt(ctx, fmt.Sprintf("Run %s?", operation), summary)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errUtils.ErrUserAborted
		}
		return err
	}
	if !ok {
		log.Warn("Operation declined", "operation", operation)
		return errUtils.ErrUserAborted
	}
	return nil
}

func huhPrompt(ctx context.Context, title, description string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeCharm()).WithOutput(os.Stderr)

	if err := form.RunWithContext(ctx); err != nil {
		return false, err
	}
	return confirmed, nil
}
