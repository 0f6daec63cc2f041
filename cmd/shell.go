package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotcommander/floatscore/internal/controller"
	"github.com/dotcommander/floatscore/internal/history"
	"github.com/dotcommander/floatscore/internal/output"
	"github.com/dotcommander/floatscore/internal/params"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive scoring session",
	Long: `Start an interactive session that keeps inputs between commands.

History recorded in the shell lives for the session only.

Commands:
  set <field> <value>   update an input (e.g. set averageCost 500)
  show                  print the current inputs
  compute               score the current inputs
  commit                score and add to the session history
  history               list the session history
  reset                 restore defaults, clear result and history
  help                  print this list
  quit                  leave the shell`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runShell(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			fail(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

// session is one interactive shell run.
type session struct {
	ctrl *controller.Controller
	out  io.Writer
	view output.Formatter
}

func runShell(in io.Reader, out io.Writer) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	s := &session{
		ctrl: controller.New(controller.Options{
			Defaults: a.cfg.FormDefaults(),
			Prefs:    a.prefs,
			History:  history.New(),
			Logger:   a.log,
		}),
		out: out,
		view: output.NewConsoleFormatterTo(out, false, a.cfg.Decimals, out == os.Stdout && output.IsTTY(out)),
	}

	fmt.Fprintln(out, `floatscore shell. Type "help" for commands.`)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if done := s.exec(scanner.Text()); done {
			return nil
		}
	}
}

// exec runs one shell line and reports whether the session should end.
func (s *session) exec(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}

	switch strings.ToLower(words[0]) {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(s.out, "set <field> <value> | show | compute | commit | history | reset | quit")
		fmt.Fprintf(s.out, "fields: %s\n", fieldList())
	case "set":
		if len(words) < 2 {
			fmt.Fprintln(s.out, "usage: set <field> <value>")
			return false
		}
		// The value is the rest of the line so names may contain spaces.
		_, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		field, value, _ := strings.Cut(strings.TrimSpace(rest), " ")
		if err := s.ctrl.Set(field, strings.TrimSpace(value)); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	case "show":
		s.show()
	case "compute", "commit":
		compute := s.ctrl.Compute
		if words[0] == "commit" {
			compute = s.ctrl.Commit
		}
		d, err := compute()
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return false
		}
		s.render(&output.Report{Current: &d})
	case "history":
		s.render(&output.Report{History: s.ctrl.History(), ShowHistory: true})
	case "reset":
		s.ctrl.Reset()
		fmt.Fprintln(s.out, "Inputs reset.")
	default:
		fmt.Fprintf(s.out, "unknown command %q, type \"help\"\n", words[0])
	}
	return false
}

func (s *session) show() {
	fields := s.ctrl.Fields()
	for _, f := range params.Fields() {
		fmt.Fprintf(s.out, "  %-14s %s\n", f, fields[f])
	}
}

func (s *session) render(r *output.Report) {
	if err := s.view.Format(r); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func fieldList() string {
	names := make([]string, 0, len(params.Fields()))
	for _, f := range params.Fields() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
