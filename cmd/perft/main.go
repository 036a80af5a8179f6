// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/seekerror/logw"

	"github.com/nimblechess/nimbus/pkg/board/fen"
	"github.com/nimblechess/nimbus/pkg/board/position"
	"github.com/nimblechess/nimbus/pkg/movegen"
)

var (
	depth   = flag.Int("depth", 4, "Search depth")
	fenFlag = flag.String("fen", "", "Start position (default to standard)")
	divide  = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	start := *fenFlag
	if start == "" {
		start = fen.Initial
	}

	pos, _, err := fen.Decode(start)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", start, err)
	}

	for i := 1; i <= *depth; i++ {
		t0 := time.Now()
		nodes := perft(pos, i, *divide && i == *depth)
		duration := time.Since(t0)

		println(fmt.Sprintf("perft,%v,%v,%v,%v", start, i, nodes, duration.Microseconds()))
	}
}

func perft(pos *position.Position, depth int, divide bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	movegen.Generate(pos, func(m position.Move) bool {
		if m.PFrom.Color != pos.Turn() {
			return true
		}
		if !m.PTo.IsEmpty() && m.PTo.Color == m.PFrom.Color {
			return true
		}

		child := pos.Clone()
		child.Apply(m)

		count := perft(child, depth-1, false)
		if divide {
			println(fmt.Sprintf("%v: %v", m, count))
		}
		nodes += count
		return true
	})
	return nodes
}
