// Package console implements a line-oriented REPL driver for the engine, in the style of
// the teacher's own console protocol -- a bufio-scanned stdin channel dispatched
// synchronously by command-or-shortcut string match -- simplified from the teacher's
// async UCI-capable driver since this engine's search runs to completion synchronously
// (see pkg/search).
package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/nimblechess/nimbus/pkg/board"
	"github.com/nimblechess/nimbus/pkg/engine"
)

const ProtocolName = "console"

// ErrUnknownCommand is reported (printed as an "Error:" line) for input whose first field
// matches no known command or shortcut.
var ErrUnknownCommand = errors.New("console: unknown command")

const helpText = `Commands:
  help, h              print this help
  quit, q              exit
  print, p             render the current board
  reset, r             reset to the starting position
  moves [square]        list moves from square, or all moves for the side to move
  move, m <text|N|->   apply a move by text, by index into the last listed moves, or list candidates
  undo, u              undo the last move
  evaluate, e          print the static evaluation
  think, t [depth]     search to depth (default 4)
  fen, f [fen-text]    print or load the current FEN`

// Driver runs the REPL loop against an Engine, reading lines from in and writing lines
// to out. Unlike the teacher's console driver, dispatch is fully synchronous: Think runs
// to completion before the next line is read, because this engine's search has no
// cancellation or background progress to interleave with input.
type Driver struct {
	e *engine.Engine

	out       chan<- string
	lastMoves []board.Move
}

// NewDriver returns a Driver for e, writing its output to out.
func NewDriver(e *engine.Engine, out chan<- string) *Driver {
	return &Driver{e: e, out: out}
}

// Run processes lines from in until it closes or a quit command is seen. It returns the
// process exit code: 0 for a normal quit or end of input.
func (d *Driver) Run(ctx context.Context, in <-chan string) int {
	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("%v", d.e)
	d.printBoard()

	for line := range in {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		cmd, args := strings.ToLower(fields[0]), fields[1:]
		if quit := d.dispatch(ctx, cmd, args); quit {
			return 0
		}
	}
	return 0
}

// dispatch runs one command, returning true iff the REPL should exit.
func (d *Driver) dispatch(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "help", "h":
		d.out <- helpText

	case "quit", "q":
		return true

	case "print", "p":
		d.printBoard()

	case "reset", "r":
		d.e.Board().Reset()
		d.lastMoves = nil
		d.printBoard()

	case "moves":
		d.cmdMoves(args)

	case "move", "m":
		d.cmdMove(args)

	case "undo", "u":
		if err := d.e.Board().Undo(); err != nil {
			d.errorf(err)
		} else {
			d.printBoard()
		}

	case "evaluate", "e":
		d.out <- fmt.Sprintf("%v", d.e.Board().Evaluate(ctx))

	case "think", "t":
		d.cmdThink(ctx, args)

	case "fen", "f":
		d.cmdFen(args)

	case "test":
		d.out <- "test suite is run externally (go test ./...)"

	default:
		d.errorf(ErrUnknownCommand)
	}
	return false
}

func (d *Driver) cmdMoves(args []string) {
	if len(args) > 0 {
		sq, err := board.ParseSquareStr(args[0])
		if err != nil {
			d.errorf(err)
			return
		}
		moves, err := d.e.Board().MovesFrom(sq)
		if err != nil {
			d.errorf(err)
			return
		}
		d.lastMoves = moves
	} else {
		d.lastMoves = d.e.Board().Moves()
	}
	d.printMoves()
}

func (d *Driver) cmdMove(args []string) {
	if len(args) == 0 || args[0] == "-" {
		d.lastMoves = d.e.Board().Moves()
		d.printMoves()
		return
	}

	text := args[0]
	if n, err := strconv.Atoi(text); err == nil {
		if n < 1 || n > len(d.lastMoves) {
			d.errorf(board.ErrInvalidMove)
			return
		}
		if err := d.e.Board().Move(d.lastMoves[n-1]); err != nil {
			d.errorf(err)
			return
		}
		d.printBoard()
		return
	}

	if err := d.e.Board().MoveText(text); err != nil {
		d.errorf(err)
		return
	}
	d.printBoard()
}

const defaultThinkDepth = 4

// cmdThink resolves the requested depth the way the teacher's analyze command resolves
// DepthLimit: an explicit argument overrides the default via a lang.Optional, left unset
// otherwise.
func (d *Driver) cmdThink(ctx context.Context, args []string) {
	var depthLimit lang.Optional[int]
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			depthLimit = lang.Some(n)
		}
	}

	depth := defaultThinkDepth
	if v, ok := depthLimit.V(); ok {
		depth = v
	}

	_, _, _, err := d.e.Board().Think(ctx, depth, func(m board.Move, depth, score int) {
		d.out <- fmt.Sprintf("%v. %v: %v", depth, m, score)
	})
	if err != nil {
		d.errorf(err)
	}
}

func (d *Driver) cmdFen(args []string) {
	if len(args) == 0 {
		d.out <- d.e.Board().FEN()
		return
	}
	if err := d.e.Board().LoadFEN(strings.Join(args, " ")); err != nil {
		d.errorf(err)
		return
	}
	d.printBoard()
}

func (d *Driver) printMoves() {
	for i, m := range d.lastMoves {
		d.out <- fmt.Sprintf("%2d. %v", i+1, m)
	}
}

func (d *Driver) errorf(err error) {
	d.out <- fmt.Sprintf("Error: %v", err)
}

const (
	files      = "    a   b   c   d   e   f   g   h"
	horizontal = "  ---------------------------------"
	vertical   = " | "
)

// printBoard renders the board with rank 8 at the top, matching the teacher's own
// printBoard layout, even though this engine's internal square order runs the other way.
func (d *Driver) printBoard() {
	pos := d.e.Board().Position()

	d.out <- ""
	d.out <- files
	d.out <- horizontal

	var sb strings.Builder
	for y := 7; y >= 0; y-- {
		sb.Reset()
		sb.WriteString(fmt.Sprintf("%d", y+1))
		sb.WriteString(vertical)
		for x := 0; x < 8; x++ {
			sb.WriteString(pos.Get(board.NewSquare(x, y)).String())
			sb.WriteString(vertical)
		}
		d.out <- sb.String()
		d.out <- horizontal
	}
	d.out <- files
	d.out <- ""
	d.out <- fmt.Sprintf("fen: %v", d.e.Board().FEN())
	d.out <- fmt.Sprintf("hash: 0x%04x", d.e.Board().Hash())
	d.out <- ""
}
