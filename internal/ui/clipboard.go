package ui

import (
	"io"
	"os"
	"sync"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard copies text for the user.
type Clipboard interface {
	Copy(text string) error
}

// OSC52Clipboard copies through the terminal with an OSC 52 escape
// sequence, which also works over SSH. Out should be the program's
// TerminalOutput so the sequence never lands inside a frame.
type OSC52Clipboard struct {
	Out io.Writer
}

// Copy implements Clipboard.
func (c OSC52Clipboard) Copy(text string) error {
	if c.Out == nil {
		return nil
	}
	_, err := osc52.New(text).WriteTo(c.Out)
	return err
}

// TerminalOutput serializes writes to the terminal. The renderer writes
// each frame in one call, so a sequence written between frames stays
// whole. The embedded file keeps Fd available for size detection.
type TerminalOutput struct {
	*os.File
	mu sync.Mutex
}

// NewTerminalOutput wraps f, usually os.Stdout.
func NewTerminalOutput(f *os.File) *TerminalOutput {
	return &TerminalOutput{File: f}
}

// Write implements io.Writer.
func (o *TerminalOutput) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.File.Write(p)
}

// WriteString implements io.StringWriter.
func (o *TerminalOutput) WriteString(s string) (int, error) {
	return o.Write([]byte(s))
}
