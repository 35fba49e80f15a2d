package cli

import (
	"fmt"
	"io"
)

// out writes a formatted message to w, ignoring write errors since CLI
// output to stdout/stderr is best-effort.
func out(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// outln writes args to w followed by a newline.
func outln(w io.Writer, args ...any) {
	fmt.Fprintln(w, args...)
}
