// Package shell is the command tree of the terminal client. Each input line runs
// against a fresh cobra tree bound to the notebook and memo stores.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/ribgsilva/memo-api/business/v1/memo"
	"github.com/ribgsilva/memo-api/client/store"
	"github.com/ribgsilva/memo-api/platform/errs"
	"github.com/spf13/cobra"
)

var ErrNoNotebook = errors.New("no notebook selected")

// MemoLookup reads one memo straight from the gateway
type MemoLookup interface {
	SelectMemoById(ctx context.Context, id int64) (*memo.Memo, error)
}

type Shell struct {
	Notebooks *store.NotebookStore
	Memos     *store.MemoStore
	Lookup    MemoLookup
	Out       io.Writer
	// WaitTimeout bounds how long a command waits for the memo cache to follow the current notebook
	WaitTimeout time.Duration
}

// reported marks errors the stores already showed to the user
type reported struct {
	err error
}

func (r reported) Error() string { return r.err.Error() }
func (r reported) Unwrap() error { return r.err }

// Exec runs one input line. quit is true once the user asked to leave.
func (s *Shell) Exec(ctx context.Context, line string) (quit bool, err error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}

	root := s.command(&quit)
	root.SetArgs(args)
	err = root.ExecuteContext(ctx)

	var r reported
	if err != nil && !errors.As(err, &r) {
		_, _ = color.New(color.FgYellow).Fprintf(s.Out, "error: %s\n", err)
	}
	return quit, err
}

func (s *Shell) command(quit *bool) *cobra.Command {
	root := &cobra.Command{
		Use:           "memo-client",
		Short:         "Notebooks and memos",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(s.Out)
	root.SetErr(s.Out)

	root.AddCommand(
		&cobra.Command{
			Use:   "notebooks",
			Short: "List notebooks, the current one is starred",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				current, _ := s.Notebooks.Current()
				for _, n := range s.Notebooks.Notebooks() {
					mark := " "
					if n.Id == current.Id {
						mark = "*"
					}
					fmt.Fprintf(s.Out, "%s %d\t%s\n", mark, n.Id, n.Name)
				}
				return nil
			},
		},
		s.notebookCommand(),
		&cobra.Command{
			Use:   "memos",
			Short: "List the memos of the current notebook",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if _, err := s.waitCurrent(cmd.Context()); err != nil {
					return err
				}
				for _, m := range s.Memos.Memos() {
					fmt.Fprintf(s.Out, "%d\t%s\n", m.Id, preview(m.Content))
				}
				return nil
			},
		},
		s.memoCommand(),
		&cobra.Command{
			Use:     "quit",
			Aliases: []string{"exit"},
			Short:   "Leave the client",
			Args:    cobra.NoArgs,
			Run: func(*cobra.Command, []string) {
				*quit = true
			},
		},
	)
	return root
}

func (s *Shell) notebookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notebook",
		Short: "Manage notebooks",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <name>",
			Short: "Create a notebook and make it current",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := s.Notebooks.AddNotebook(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return reported{err}
				}
				fmt.Fprintf(s.Out, "added notebook %d\n", n.Id)
				return nil
			},
		},
		&cobra.Command{
			Use:   "use <id>",
			Short: "Make a notebook current",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseId("notebook_id", args[0])
				if err != nil {
					return err
				}
				if err := s.Notebooks.SetCurrentNotebook(cmd.Context(), id); err != nil {
					return err
				}
				_, err = s.waitCurrent(cmd.Context())
				return err
			},
		},
		&cobra.Command{
			Use:   "rm <id>",
			Short: "Delete a notebook, its memos stay stored",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseId("notebook_id", args[0])
				if err != nil {
					return err
				}
				if err := s.Notebooks.DeleteNotebook(cmd.Context(), id); err != nil {
					return reported{err}
				}
				return nil
			},
		},
	)
	return cmd
}

func (s *Shell) memoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memo",
		Short: "Manage memos of the current notebook",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <content>",
			Short: "Add a memo to the current notebook",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				current, err := s.waitCurrent(cmd.Context())
				if err != nil {
					return err
				}
				m, err := s.Memos.AddMemo(cmd.Context(), strings.Join(args, " "), current)
				if err != nil {
					return reported{err}
				}
				fmt.Fprintf(s.Out, "added memo %d\n", m.Id)
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm <id>",
			Short: "Delete a memo",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseId("id", args[0])
				if err != nil {
					return err
				}
				if err := s.Memos.DeleteMemo(cmd.Context(), id); err != nil {
					return reported{err}
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Print the content of a memo",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseId("id", args[0])
				if err != nil {
					return err
				}
				m, err := s.find(cmd.Context(), id)
				if err != nil {
					return err
				}
				if m == nil {
					return fmt.Errorf("memo %d not found", id)
				}
				fmt.Fprintf(s.Out, "%s\n", m.Content)
				return nil
			},
		},
	)
	return cmd
}

// find prefers the memo cache and falls back to the gateway
func (s *Shell) find(ctx context.Context, id int64) (*memo.Memo, error) {
	for _, m := range s.Memos.Memos() {
		if m.Id == id {
			return &m, nil
		}
	}
	if s.Lookup == nil {
		return nil, nil
	}
	return s.Lookup.SelectMemoById(ctx, id)
}

// waitCurrent returns the current notebook id once the memo cache holds it
func (s *Shell) waitCurrent(ctx context.Context) (int64, error) {
	current, ok := s.Notebooks.Current()
	if !ok {
		return 0, ErrNoNotebook
	}

	timeout := s.WaitTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := s.Memos.WaitFor(waitCtx, current.Id); err != nil {
		return 0, fmt.Errorf("memos of notebook %d not loaded: %w", current.Id, err)
	}
	return current.Id, nil
}

func parseId(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &errs.InputError{Field: field, Err: fmt.Errorf("%q is not a valid id", raw)}
	}
	return id, nil
}

func preview(content string) string {
	line := strings.SplitN(content, "\n", 2)[0]
	if r := []rune(line); len(r) > 60 {
		return string(r[:60]) + "..."
	}
	return line
}
