// Package clipboard puts finished reports, or any other text, on the
// operating system pasteboard. It backs the copy subcommand and the --copy
// flag of the report command.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable means no pasteboard command was found (pbcopy on macOS,
// xclip, xsel or wl-copy on Linux).
var ErrUnavailable = errors.New("no clipboard utility available on this system")

// Copier receives report text. Tests substitute a recording implementation.
type Copier interface {
	Copy(text string) error
}

// Service is the Copier used by the CLI. Each call runs the platform
// pasteboard command once and waits for it to consume stdin.
type Service struct{}

// NewService returns the pasteboard-backed Copier.
func NewService() *Service {
	return &Service{}
}

// Copy hands text to the pasteboard command. The report command logs a
// failure and keeps the written file; the copy subcommand returns it.
func (service *Service) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

var _ Copier = (*Service)(nil)
