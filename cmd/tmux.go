package cmd

import (
	"context"
	"fmt"

	"github.com/grovetools/core/pkg/tmux"
	"github.com/spf13/cobra"
)

// NewTmuxCmd exposes the Session Adapter's primitive operations directly for
// diagnosing a workspace without going through the TUI (SPEC_FULL §10.4).
func NewTmuxCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tmux",
		Short: "Low-level multiplexer operations, for diagnosing a session",
	}
	root.AddCommand(newTmuxListCmd())
	root.AddCommand(newTmuxCaptureCmd())
	root.AddCommand(newTmuxCursorCmd())
	root.AddCommand(newTmuxSendCmd())
	return root
}

func newTmuxListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List live tmux sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := tmux.NewClient()
			if err != nil {
				return err
			}
			sessions, err := client.ListSessions(context.Background())
			if err != nil {
				return err
			}
			for _, s := range sessions {
				fmt.Println(s)
			}
			return nil
		},
	}
}

func newTmuxCaptureCmd() *cobra.Command {
	var lines int
	var sgr, join bool
	c := &cobra.Command{
		Use:   "capture <target>",
		Short: "Capture a pane's scrollback",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := tmux.NewClient()
			if err != nil {
				return err
			}
			out, err := client.Capture(context.Background(), args[0], lines, sgr, join)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}
	c.Flags().IntVar(&lines, "lines", 200, "Number of scrollback lines to capture (0 = visible only)")
	c.Flags().BoolVar(&sgr, "sgr", false, "Preserve SGR escape sequences (render lane)")
	c.Flags().BoolVar(&join, "join", true, "Join wrapped lines")
	return c
}

func newTmuxCursorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cursor <pane>",
		Short: "Query a pane's cursor position and dimensions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := tmux.NewClient()
			if err != nil {
				return err
			}
			info, err := client.QueryCursor(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("row=%d col=%d visible=%t pane=%dx%d\n", info.Row, info.Col, info.Visible, info.PaneCols, info.PaneRows)
			return nil
		},
	}
}

func newTmuxSendCmd() *cobra.Command {
	var named bool
	c := &cobra.Command{
		Use:   "send <session> <text>",
		Short: "Send a literal string or named key to a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := tmux.NewClient()
			if err != nil {
				return err
			}
			session, text := args[0], args[1]
			ctx := context.Background()
			if named {
				return client.SendNamedKey(ctx, session, text)
			}
			return client.SendLiteral(ctx, session, text)
		},
	}
	c.Flags().BoolVar(&named, "named", false, "Send text as a named key (e.g. Enter, C-a) rather than literal bytes")
	return c
}
