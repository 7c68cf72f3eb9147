// Command alisp is the shell collaborator of spec §6: a thin REPL (and
// an embedded --test scenario runner) wired only to the alisp.Machine
// API. It carries no parsing, evaluation or printing rules of its own —
// those live in alisp and the packages it wraps.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akuukka/go-alisp"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var runTests bool
	cmd := &cobra.Command{
		Use:   "alisp",
		Short: "alisp is a minimal Emacs-Lisp-style interpreter shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			if runTests {
				return runTestSuite(cmd.OutOrStdout())
			}
			return runREPL(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&runTests, "test", false, "run the embedded end-to-end scenario suite instead of the REPL")
	return cmd
}

// runREPL reads one line at a time, evaluates it against a fresh
// standard-library Machine, and prints the result prefixed by " => ",
// per spec §6's REPL surface. An error is caught, its kind and message
// printed, and the loop continues — the REPL is the one place in this
// repository that catches rather than propagates (spec §7).
func runREPL(in io.Reader, out io.Writer) error {
	m, err := alisp.New(true)
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := m.Evaluate(line)
		if err != nil {
			fmt.Fprintln(out, err.Error())
			continue
		}
		fmt.Fprintln(out, " => "+alisp.Print(v))
	}
	return scanner.Err()
}
