package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/grovetools/core/logging"
	"github.com/grovetools/core/pkg/paths"
	"github.com/grovetools/core/tui"
	"github.com/grovetools/core/tui/host"
	"github.com/grovetools/core/util/sanitize"
)

// NewTuiCmd launches the interactive workspace surface (SPEC_FULL §10.4):
// the Browsing/Interactive program wiring the Reconciler, Scheduler,
// Capture Processor, and Interactive Controller together.
func NewTuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive workspace manager",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("grove tui requires an interactive terminal")
			}

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			redirectLogsAwayFromAltScreen(filepath.Base(cwd))
			tui.InitializeTUI()
			return host.Run(cwd)
		},
	}
}

// redirectLogsAwayFromAltScreen points every logging.NewLogger output at a
// per-project file instead of stderr, so a component's log lines never tear
// the alternate-screen TUI and multiple projects' logs never collide in the
// shared state directory. Best-effort: if the state directory can't be
// created, loggers keep writing to stderr.
func redirectLogsAwayFromAltScreen(project string) {
	dir := paths.StateDir()
	if dir == "" {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	filename := sanitize.ForFilename(project) + "-tui.log"
	f, err := os.OpenFile(filepath.Join(dir, filename), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	logging.SetGlobalOutput(f)
}
