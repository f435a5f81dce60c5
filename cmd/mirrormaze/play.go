package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mirror-maze/internal/maze/core"
	"github.com/vovakirdan/mirror-maze/internal/maze/levels/formats"
	"github.com/vovakirdan/mirror-maze/internal/session"
)

var (
	flagMovesFile string
	flagMoves     []string
	flagPlayJSON  bool

	flagHintMovesFile string
	flagHintMoves     []string
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Apply moves to a level and report the board",
	Long: `Start a level, apply a move script and report every beam, which
targets are lit, the move count and the star rating.

Moves come from a YAML file (--moves) followed by inline moves (--do).
Inline moves use ACTION:X,Y[:PIECE]:
  place:5,4:mirror_left   rotate:5,4   remove:5,4

Examples:
  mirrormaze play 1
  mirrormaze play 2 --do place:4,5:filter_red
  mirrormaze play 4 --moves solution.yaml --json`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

var hintCmd = &cobra.Command{
	Use:   "hint <level>",
	Short: "Get a hint for a board position",
	Long: `Print a hint for a level after applying an optional move script.

Examples:
  mirrormaze hint 3
  mirrormaze hint 3 --do place:5,4:splitter`,
	Args: cobra.ExactArgs(1),
	Run:  runHint,
}

func init() {
	addScriptFlags(playCmd, &flagMovesFile, &flagMoves)
	playCmd.Flags().BoolVar(&flagPlayJSON, "json", false, "Print the final result as JSON")

	addScriptFlags(hintCmd, &flagHintMovesFile, &flagHintMoves)
}

// sessionConfig builds the session manager config from the loaded settings.
func sessionConfig() session.Config {
	cfg := session.DefaultConfig()
	if d := appConfig.Sessions.IdleTimeout; d > 0 {
		cfg.IdleTimeout = d
	}
	if d := appConfig.Sessions.CleanupPeriod; d > 0 {
		cfg.CleanupPeriod = d
	}
	return cfg
}

// startSession starts the level in a fresh session and applies the script.
// step is called after every action.
func startSession(arg, movesFile string, inline []string, step func(int, core.Action, session.Result)) (*session.Manager, *session.Session, core.LevelDefinition, session.Result) {
	def := mustLevel(mustCatalog(), arg)

	actions, err := buildScript(movesFile, inline)
	if err != nil {
		exitf("Error: %v\n", err)
	}

	mgr := session.NewManager(sessionConfig(), logger)
	s := mgr.Start(def)

	res := s.Refresh()
	for i, a := range actions {
		res = s.Act(a)
		if !res.Success {
			logger.Debug("move rejected", "move", i+1, "action", a.Type, "x", a.X, "y", a.Y, "error", res.Error)
		}
		if step != nil {
			step(i+1, a, res)
		}
	}
	return mgr, s, def, res
}

func runPlay(_ *cobra.Command, args []string) {
	st := newStyler()

	var step func(int, core.Action, session.Result)
	if !flagPlayJSON {
		step = func(n int, a core.Action, res session.Result) {
			desc := fmt.Sprintf("%s (%d,%d)", a.Type, a.X, a.Y)
			if a.Piece != "" {
				desc += " " + a.Piece
			}
			mark := st.status(res.Success, "ok", "rejected: "+res.Error)
			fmt.Printf("  %2d. %-28s %s\n", n, desc, mark)
		}
		fmt.Println(st.header("Moves:"))
	}

	mgr, s, def, res := startSession(args[0], flagMovesFile, flagMoves, step)
	defer mgr.Delete(s.ID())

	if flagPlayJSON {
		printJSON(res)
		return
	}

	fmt.Println()
	printSessionReport(os.Stdout, st, def, s, res)
}

func runHint(_ *cobra.Command, args []string) {
	mgr, s, _, _ := startSession(args[0], flagHintMovesFile, flagHintMoves, nil)
	defer mgr.Delete(s.ID())

	hint, ok := s.Hint()
	if !ok {
		fmt.Println("No hint available")
		return
	}
	fmt.Println(hint)
}

// printSessionReport reports res together with the session's remaining
// pieces and par.
func printSessionReport(w io.Writer, st styler, def core.LevelDefinition, s *session.Session, res session.Result) {
	var (
		inventory map[string]int
		par       int
	)
	_ = s.Do(func(e *core.Engine) error {
		inventory = e.Inventory()
		par = e.Par()
		return nil
	})
	printReport(w, st, def, res, inventory, par)
}

func printReport(w io.Writer, st styler, def core.LevelDefinition, res session.Result, inventory map[string]int, par int) {
	fmt.Fprintln(w, st.header(fmt.Sprintf("Level %d - %s", def.ID, def.Name)))
	fmt.Fprintf(w, "Moves: %d (par %d)\n", res.Moves, par)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Beams:")
	for _, p := range res.LightPaths {
		fmt.Fprintf(w, "  %-7s from %-7s to %-7s %s\n", st.beam(p.Color), p.Start, p.End, st.dim(fmt.Sprintf("%d cells", len(p.Path))))
	}

	fmt.Fprintln(w, "Targets:")
	for _, t := range res.State.Targets {
		fmt.Fprintf(w, "  (%d,%d) %-7s %s\n", t.X, t.Y, st.beam(t.RequiredColor), st.status(t.IsHit, "lit", "dark"))
	}

	if len(inventory) > 0 {
		fmt.Fprintln(w, "Pieces left:")
		names := formats.PieceNames(core.LevelDefinition{AvailablePieces: inventory})
		for _, name := range names {
			fmt.Fprintf(w, "  %-13s x%d\n", name, inventory[name])
		}
	}

	fmt.Fprintln(w)
	if res.IsComplete {
		fmt.Fprintf(w, "Result: %s %s\n", st.status(true, "SOLVED", ""), st.stars(res.Stars))
	} else {
		fmt.Fprintf(w, "Result: %s\n", st.status(false, "", "unsolved"))
	}
}
