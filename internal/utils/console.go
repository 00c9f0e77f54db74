package utils

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	stepPrefix = color.New(color.FgCyan)
	okPrefix   = color.New(color.FgGreen)
	failPrefix = color.New(color.FgRed)
)

// Stepf prints a "[*]" progress line.
func Stepf(w io.Writer, format string, args ...any) {
	stepPrefix.Fprint(w, "[*]")
	fmt.Fprintf(w, " "+format+"\n", args...)
}

// Okf prints a "[+]" success line.
func Okf(w io.Writer, format string, args ...any) {
	okPrefix.Fprint(w, "[+]")
	fmt.Fprintf(w, " "+format+"\n", args...)
}

// Failf prints a "[!]" failure line.
func Failf(w io.Writer, format string, args ...any) {
	failPrefix.Fprint(w, "[!]")
	fmt.Fprintf(w, " "+format+"\n", args...)
}
