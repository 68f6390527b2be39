// Package output provides instruction sinks and serialization helpers.
package output

import (
	"io"
	"strings"
)

// Script is an in-memory instruction sink. It keeps lines in the order
// they were added and is not safe for concurrent use.
type Script struct {
	lines []string
}

// NewScript returns an empty Script.
func NewScript() *Script {
	return &Script{}
}

// AddInstruction appends one line.
func (s *Script) AddInstruction(text string) {
	s.lines = append(s.lines, text)
}

// Lines returns a copy of the collected lines.
func (s *Script) Lines() []string {
	return append([]string(nil), s.lines...)
}

// Len returns the number of collected lines.
func (s *Script) Len() int {
	return len(s.lines)
}

// String returns the lines joined by newlines, with a trailing newline.
func (s *Script) String() string {
	if len(s.lines) == 0 {
		return ""
	}
	return strings.Join(s.lines, "\n") + "\n"
}

// WriteTo writes the script to w.
func (s *Script) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// LineWriter is an instruction sink that streams each line to a writer.
// The first write error is kept and later lines are dropped.
type LineWriter struct {
	w   io.Writer
	err error
}

// NewLineWriter returns a LineWriter writing to w.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: w}
}

// AddInstruction writes text followed by a newline.
func (lw *LineWriter) AddInstruction(text string) {
	if lw.err != nil {
		return
	}
	_, lw.err = io.WriteString(lw.w, text+"\n")
}

// Err returns the first write error, if any.
func (lw *LineWriter) Err() error {
	return lw.err
}
