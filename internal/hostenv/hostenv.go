// Package hostenv answers "does the host prefer a dark appearance" for the
// theme resolver.
//
// A Host walks an ordered chain of detectors and takes the first definite
// answer. Nothing is cached: every query re-asks the chain so a change of the
// desktop setting shows up on the next resolve.
package hostenv

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// EnvColorScheme overrides every other signal when set to dark or light.
const EnvColorScheme = "THEMEPREF_COLOR_SCHEME"

// Detector is one source of the host color-scheme signal. ok is false when the
// source is unavailable or has no opinion.
type Detector interface {
	Name() string
	Detect() (dark bool, ok bool)
}

type detectorFunc struct {
	name string
	fn   func() (bool, bool)
}

func (d detectorFunc) Name() string { return d.name }

func (d detectorFunc) Detect() (bool, bool) { return d.fn() }

// NewDetector wraps fn as a Detector.
func NewDetector(name string, fn func() (dark bool, ok bool)) Detector {
	return detectorFunc{name: name, fn: fn}
}

// Signal is the outcome of one query. Source is empty when no detector answered.
type Signal struct {
	Dark   bool
	Source string
}

type Options struct {
	// NonInteractive marks a context with no host to ask (pipes, services, pre-render).
	NonInteractive bool
	// TerminalBackground adds the terminal's own background color as a last resort.
	TerminalBackground bool
	// Detectors replaces the default chain when non-nil.
	Detectors []Detector
	Logger    *slog.Logger
}

type Host struct {
	interactive bool
	detectors   []Detector
	logger      *slog.Logger
}

func New(opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	detectors := opts.Detectors
	if detectors == nil {
		detectors = DefaultDetectors(opts.TerminalBackground)
	}
	return &Host{
		interactive: !opts.NonInteractive && attachedToTerminal(),
		detectors:   detectors,
		logger:      logger,
	}
}

// DefaultDetectors is the env override, then the platform's own setting,
// then optionally the terminal background.
func DefaultDetectors(terminalBackground bool) []Detector {
	chain := []Detector{NewDetector("env", detectEnv)}
	chain = append(chain, platformDetectors()...)
	if terminalBackground {
		chain = append(chain, NewDetector("terminal", detectTerminal))
	}
	return chain
}

func (h *Host) Interactive() bool {
	return h.interactive
}

func (h *Host) PrefersDark() bool {
	return h.Query().Dark
}

// Query runs the detector chain and reports which detector answered.
func (h *Host) Query() Signal {
	for _, d := range h.detectors {
		dark, ok := d.Detect()
		if !ok {
			h.logger.Debug("color scheme detector had no answer", "detector", d.Name())
			continue
		}
		h.logger.Debug("color scheme detected", "detector", d.Name(), "dark", dark)
		return Signal{Dark: dark, Source: d.Name()}
	}
	return Signal{}
}

// Static is a fixed environment for tests and embedders that already know the answer.
type Static struct {
	IsInteractive bool
	Dark          bool
}

func (s Static) Interactive() bool { return s.IsInteractive }

func (s Static) PrefersDark() bool { return s.Dark }

func attachedToTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) || term.IsTerminal(int(os.Stdin.Fd()))
}

func detectEnv() (bool, bool) {
	return parseSchemeWord(os.Getenv(EnvColorScheme))
}

func detectTerminal() (bool, bool) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false, false
	}
	return lipgloss.HasDarkBackground(), true
}

func parseSchemeWord(v string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "dark":
		return true, true
	case "light":
		return false, true
	default:
		return false, false
	}
}
