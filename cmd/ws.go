package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/core/config"
	"github.com/grovetools/core/errors"
	"github.com/grovetools/core/git"
	"github.com/grovetools/core/pkg/process"
	"github.com/grovetools/core/pkg/reconcile"
	"github.com/grovetools/core/pkg/tmux"
	"github.com/grovetools/core/pkg/workspace"
	"github.com/spf13/cobra"
)

// NewWsCmd builds the "grove ws" command group: list/create/delete
// workspaces within the current project (SPEC_FULL §10.4).
func NewWsCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ws",
		Short: "Manage Grove workspaces in the current project",
	}
	root.AddCommand(newWsListCmd())
	root.AddCommand(newWsCreateCmd())
	root.AddCommand(newWsDeleteCmd())
	return root
}

func newWsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List workspaces reconciled from worktrees, markers, and live sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			worktrees := git.NewWorktreeManager()
			client, err := tmux.NewClient()
			if err != nil {
				return fmt.Errorf("connect to tmux: %w", err)
			}

			project := filepath.Base(cwd)
			r := reconcile.New(worktrees, client, project)

			result, err := r.Reconcile(context.Background(), cwd)
			if err != nil {
				return err
			}

			for _, ws := range result.Workspaces {
				marker := " "
				if ws.IsOrphanedWorktree {
					marker = "o"
				}
				fmt.Printf("%s %-20s %-10s %-8s %s\n", marker, ws.Name, ws.Status, ws.AgentKind, ws.Branch)
			}
			for _, o := range result.Orphaned {
				fmt.Printf("! %-20s %-10s (orphaned session, no worktree)\n", o.SessionName, "")
			}
			return nil
		},
	}
}

func newWsCreateCmd() *cobra.Command {
	var agentKind, baseBranch string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new workspace worktree and launch its agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !workspace.IsValidWorkspaceName(name) {
				return fmt.Errorf("invalid workspace name %q: use only letters, digits, hyphens, underscores", name)
			}

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			project := filepath.Base(cwd)
			dirName := workspace.WorkspaceDirName(project, name)
			worktreePath := filepath.Join(filepath.Dir(cwd), dirName)

			ctx := context.Background()
			wtMgr := git.NewWorktreeManager()
			if err := wtMgr.CreateWorktree(ctx, cwd, worktreePath, name, true); err != nil {
				return errors.CommandFailed("git worktree add", err)
			}

			kind := workspace.ParseAgentKind(agentKind)
			if kind == workspace.AgentUnsupported {
				return fmt.Errorf("unsupported agent kind %q: want claude or codex", agentKind)
			}
			if err := workspace.WriteAgentMarker(worktreePath, kind); err != nil {
				return err
			}
			if baseBranch == "" {
				baseBranch = "main"
			}
			if err := workspace.WriteBaseMarker(worktreePath, baseBranch); err != nil {
				return err
			}
			if err := workspace.AppendGitignore(cwd); err != nil {
				return err
			}
			if err := workspace.RunSetupScript(cwd, cwd, name, worktreePath); err != nil {
				return errors.SetupFailed(name, err)
			}

			cfg, _ := config.LoadFrom(cwd)
			command, cmdArgs := cfg.AgentCommand(string(kind))

			client, err := tmux.NewClient()
			if err != nil {
				return fmt.Errorf("connect to tmux: %w", err)
			}
			sessionName := workspace.SessionName(project, name)
			launchCmd := command
			for _, a := range cmdArgs {
				launchCmd += " " + a
			}
			if err := client.Launch(ctx, tmux.LaunchOptions{
				SessionName:      sessionName,
				WorkingDirectory: worktreePath,
				Panes: []tmux.PaneOptions{
					{Command: launchCmd},
				},
			}); err != nil {
				return errors.LaunchFailed(name, err)
			}

			fmt.Printf("Created workspace %q at %s (session %s)\n", name, worktreePath, sessionName)
			return nil
		},
	}
	cmd.Flags().StringVar(&agentKind, "agent", "claude", "Agent to run in the new workspace (claude|codex)")
	cmd.Flags().StringVar(&baseBranch, "base", "", "Base branch the workspace was created from")
	return cmd
}

func newWsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Kill a workspace's session and remove its worktree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			project := filepath.Base(cwd)
			worktreePath := filepath.Join(filepath.Dir(cwd), workspace.WorkspaceDirName(project, name))

			ctx := context.Background()
			sessionName := workspace.SessionName(project, name)
			if client, err := tmux.NewClient(); err == nil {
				if pid, err := client.GetSessionPID(ctx, sessionName); err == nil && !process.IsProcessAlive(pid) {
					fmt.Printf("session %q has a stale tmux registration (pid %d is gone)\n", sessionName, pid)
				}
				_ = client.KillSession(ctx, sessionName)
			}

			wtMgr := git.NewWorktreeManager()
			if err := wtMgr.RemoveWorktree(ctx, cwd, worktreePath); err != nil {
				return errors.CommandFailed("git worktree remove", err)
			}
			fmt.Printf("Deleted workspace %q\n", name)
			return nil
		},
	}
}
