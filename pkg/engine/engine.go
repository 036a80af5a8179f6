// Package engine glues the board façade to a name, author and version identity, the way
// the teacher's own pkg/engine wires a Board to UCI/console protocol drivers.
package engine

import (
	"fmt"

	"github.com/seekerror/build"

	"github.com/nimblechess/nimbus/pkg/board"
)

var version = build.NewVersion(0, 1, 0)

// Engine pairs a Board with a name/author/version identity for REPL banners.
type Engine struct {
	name, author string
	b            *board.Board
}

// New returns an Engine at the starting position.
func New(name, author string) *Engine {
	return &Engine{name: name, author: author, b: board.NewBoard()}
}

// Board returns the underlying board façade.
func (e *Engine) Board() *board.Board {
	return e.b
}

// Name returns the engine's name.
func (e *Engine) Name() string {
	return e.name
}

// Author returns the engine's author.
func (e *Engine) Author() string {
	return e.author
}

// Version returns the engine's build version.
func (e *Engine) Version() build.Version {
	return version
}

func (e *Engine) String() string {
	return fmt.Sprintf("%v %v by %v", e.name, version, e.author)
}
