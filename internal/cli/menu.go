package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/worktimer/internal/account"
)

func newMenuCommand(ctx context.Context, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive text menu.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := app.Account(cmd)
			if err != nil {
				return err
			}
			err = runMenu(ctx, acct, cmd.InOrStdin(), cmd.OutOrStdout())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

// runMenu reads one choice per line until exit, end of input, or ctx is
// cancelled. Write failures are reported and the loop keeps going.
func runMenu(ctx context.Context, acct *account.Account, in io.Reader, out io.Writer) error {
	lines := newLineReader(in)
	defer lines.close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		printMenu(out)
		lines.request()

		var res readResult
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case res = <-lines.results:
		}
		if res.eof {
			fmt.Fprintln(out)
			return res.err
		}

		switch strings.TrimSpace(res.line) {
		case "1":
			outcome, err := acct.Start()
			fmt.Fprintln(out, describeOutcome(outcome, 0))
			warnNotSaved(out, err)
		case "2":
			outcome, elapsed, err := acct.Stop()
			fmt.Fprintln(out, describeOutcome(outcome, elapsed))
			warnNotSaved(out, err)
		case "3":
			printStatus(out, acct.Status())
		case "4":
			outcome, err := acct.Reset()
			fmt.Fprintln(out, describeOutcome(outcome, 0))
			warnNotSaved(out, err)
		case "5", "q", "quit", "exit":
			fmt.Fprintln(out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice. Please try again.")
		}
	}
}

type readResult struct {
	line string
	eof  bool
	err  error
}

// lineReader scans input on its own goroutine, one line per request, so a
// blocked read never keeps the menu from noticing cancellation. Lines are
// only read when asked for, never ahead.
type lineReader struct {
	next    chan struct{}
	results chan readResult
}

func newLineReader(in io.Reader) *lineReader {
	r := &lineReader{
		next:    make(chan struct{}, 1),
		results: make(chan readResult, 1),
	}
	go func() {
		scanner := bufio.NewScanner(in)
		for range r.next {
			if scanner.Scan() {
				r.results <- readResult{line: scanner.Text()}
				continue
			}
			r.results <- readResult{eof: true, err: scanner.Err()}
			return
		}
	}()
	return r
}

func (r *lineReader) request() {
	r.next <- struct{}{}
}

// close lets the goroutine exit once any pending read returns.
func (r *lineReader) close() {
	close(r.next)
}

func printMenu(out io.Writer) {
	fmt.Fprint(out, "\nWork Timer Menu:\n"+
		"1. Start Timer\n"+
		"2. Stop Timer\n"+
		"3. Check Status\n"+
		"4. Reset Timer\n"+
		"5. Exit\n"+
		"Enter your choice (1-5): ")
}

func warnNotSaved(out io.Writer, err error) {
	if err != nil {
		fmt.Fprintf(out, "Warning: %v. The change is kept for this run only.\n", err)
	}
}
