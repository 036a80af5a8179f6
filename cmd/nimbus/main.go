// nimbus is a line-oriented REPL for the chess engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/nimblechess/nimbus/pkg/engine"
	"github.com/nimblechess/nimbus/pkg/engine/console"
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: nimbus [options]

nimbus is a simple line-oriented chess engine REPL.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New("nimbus", "nimblechess")

	in := engine.ReadStdinLines(ctx)
	out := make(chan string, 100)

	done := make(chan struct{})
	go func() {
		engine.WriteStdoutLines(ctx, out)
		close(done)
	}()

	d := console.NewDriver(e, out)
	code := d.Run(ctx, in)
	close(out)
	<-done

	os.Exit(code)
}
