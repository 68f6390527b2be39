package output

import (
	"bytes"
	"errors"
	"testing"
)

func TestScript(t *testing.T) {
	s := NewScript()
	if s.String() != "" || s.Len() != 0 {
		t.Errorf("empty script = %q (%d lines), expected nothing", s.String(), s.Len())
	}

	s.AddInstruction("import datetime")
	s.AddInstruction("plt.show()")

	lines := s.Lines()
	lines[0] = "changed"
	if got := s.Lines()[0]; got != "import datetime" {
		t.Errorf("Lines shares storage: first line = %q", got)
	}

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	expected := "import datetime\nplt.show()\n"
	if buf.String() != expected || n != int64(len(expected)) {
		t.Errorf("WriteTo wrote %q (%d bytes), expected %q", buf.String(), n, expected)
	}
}

type failingWriter struct {
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("disk full")
}

func TestLineWriter(t *testing.T) {
	var buf bytes.Buffer
	lw := NewLineWriter(&buf)
	lw.AddInstruction("a")
	lw.AddInstruction("\tb")
	if lw.Err() != nil {
		t.Fatalf("unexpected error: %v", lw.Err())
	}
	if buf.String() != "a\n\tb\n" {
		t.Errorf("LineWriter wrote %q", buf.String())
	}

	fw := &failingWriter{}
	lw = NewLineWriter(fw)
	lw.AddInstruction("a")
	lw.AddInstruction("b")
	if lw.Err() == nil {
		t.Error("expected write error")
	}
	if fw.writes != 1 {
		t.Errorf("writer called %d times after failure, expected 1", fw.writes)
	}
}
