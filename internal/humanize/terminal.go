package humanize

import (
	"fmt"
	"io"
	"sync"
)

// TerminalView renders to a pair of writers: results to out, alerts to
// errOut. Writes are serialized so concurrent handlers do not interleave
// within a line.
type TerminalView struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer

	alerted bool
}

// NewTerminalView constructs a TerminalView.
func NewTerminalView(out, errOut io.Writer) *TerminalView {
	return &TerminalView{out: out, errOut: errOut}
}

func (v *TerminalView) SetOutput(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.out, text)
}

func (v *TerminalView) SetScore(score string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.out, score)
}

func (v *TerminalView) Alert(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.alerted = true
	fmt.Fprintln(v.errOut, message)
}

// Alerted reports whether any alert has been shown.
func (v *TerminalView) Alerted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.alerted
}
