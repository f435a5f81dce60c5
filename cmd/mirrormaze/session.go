package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mirror-maze/internal/maze/core"
	"github.com/vovakirdan/mirror-maze/internal/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session <level>",
	Short: "Play a level interactively",
	Long: `Start a level and read moves from standard input, one per line.
The board is reported after every accepted move.

Input:
  ACTION:X,Y[:PIECE]  place, rotate or remove a piece
  hint                show a hint for the current board
  reset               restart the level
  board               report the current board
  sessions            list active sessions
  quit                leave

A session left idle for longer than sessions.idle_timeout ends on its own.

Examples:
  mirrormaze session 1
  echo "place:2,4:mirror_right" | mirrormaze session 1`,
	Args: cobra.ExactArgs(1),
	RunE: runSession,
}

func runSession(cmd *cobra.Command, args []string) error {
	def := mustLevel(mustCatalog(), args[0])

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	mgr := session.NewManager(sessionConfig(), logger)
	go mgr.Run(ctx)

	return playInteractive(ctx, mgr, def, cmd.InOrStdin(), cmd.OutOrStdout(), newStyler())
}

// playInteractive runs one session until input ends, the player quits or
// solves the level, ctx is cancelled, or the manager reaps the session.
func playInteractive(ctx context.Context, mgr *session.Manager, def core.LevelDefinition, in io.Reader, out io.Writer, st styler) error {
	s := mgr.Start(def)
	defer mgr.Delete(s.ID())

	stop := make(chan struct{})
	defer close(stop)
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-stop:
				return
			}
		}
	}()

	fmt.Fprintln(out, st.header(fmt.Sprintf("Level %d - %s", def.ID, def.Name)))
	fmt.Fprintln(out, st.dim("Enter ACTION:X,Y[:PIECE], hint, reset, board, sessions or quit."))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.Done():
			fmt.Fprintln(out, "Session ended after being idle.")
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if handleInput(out, st, mgr, s, def, strings.TrimSpace(line)) {
				return nil
			}
		}
	}
}

// handleInput applies one input line and reports whether the session is over.
func handleInput(out io.Writer, st styler, mgr *session.Manager, s *session.Session, def core.LevelDefinition, line string) bool {
	switch strings.ToLower(line) {
	case "":
		return false
	case "quit", "exit":
		return true
	case "hint":
		hint, ok := s.Hint()
		if !ok {
			hint = "No hint available"
		}
		fmt.Fprintln(out, hint)
		return false
	case "reset":
		s.Reset()
		fmt.Fprintln(out, "Level restarted.")
		return false
	case "board":
		printSessionReport(out, st, def, s, s.Refresh())
		return false
	case "sessions":
		now := time.Now()
		for _, other := range mgr.List() {
			fmt.Fprintf(out, "  %s  level %d  idle %s\n", other.ID(), other.LevelID(), now.Sub(other.LastUsed()).Round(time.Second))
		}
		return false
	}

	a, err := parseStep(line)
	if err != nil {
		fmt.Fprintf(out, "%s %v\n", st.status(false, "", "error:"), err)
		return false
	}
	res := s.Act(a)
	if !res.Success {
		fmt.Fprintf(out, "%s %s\n", st.status(false, "", "rejected:"), res.Error)
		return false
	}
	printSessionReport(out, st, def, s, res)
	return res.IsComplete
}
