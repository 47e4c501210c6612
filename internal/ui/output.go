package ui

import (
	"fmt"
	"io"
	"os"
)

// Stdout and Stderr are swapped by tests.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func OK(msg string)   { fmt.Fprintln(Stdout, current.Success.Render(current.SymDone+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(Stderr, current.Error.Render("✖ "+msg)) }
func Hint(msg string) { fmt.Fprintln(Stderr, current.Muted.Render(msg)) }
