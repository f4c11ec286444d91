package logscan

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

// doOpsOnPipe calls every kind of pipe operation on the supplied pipe and
// tries to trigger a panic.
func doOpsOnPipe(t *testing.T, p *Pipe, kind string) {
	var action string
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("panic: %s on %s pipe", action, kind)
		}
	}()
	action = "Match()"
	output, err := p.Match("x").String()
	if err != nil {
		t.Error(err)
	}
	if output != "" {
		t.Errorf("want zero output from %s on %s pipe, but got %q", action, kind, output)
	}
	action = "Reject()"
	if _, err = p.Reject("x").String(); err != nil {
		t.Error(err)
	}
	action = "Analyze()"
	res, err := p.Analyze(nil)
	if err != nil {
		t.Error(err)
	}
	if res.Lines != 0 {
		t.Errorf("want no lines from %s on %s pipe, got %d", action, kind, res.Lines)
	}
	action = "JQ()"
	if _, err = p.JQ(".").String(); err != nil {
		t.Error(err)
	}
	action = "Stdout()"
	if _, err = p.Stdout(); err != nil {
		t.Error(err)
	}
	action = "Close()"
	if err = p.Close(); err != nil {
		t.Error(err)
	}
	action = "Source()"
	if p.Source() != "" {
		t.Errorf("want empty source from %s on %s pipe", action, kind)
	}
}

func TestNilPipeOps(t *testing.T) {
	t.Parallel()
	doOpsOnPipe(t, nil, "nil")
}

func TestZeroPipeOps(t *testing.T) {
	t.Parallel()
	doOpsOnPipe(t, &Pipe{}, "zero")
}

func TestErroredPipeOpsAreNoOps(t *testing.T) {
	t.Parallel()
	fake := errors.New("fake error")
	p := Echo("1.1.1.1 \"GET /\"\n").WithError(fake)
	if got := p.Match("1.1.1.1"); got.Error() != fake {
		t.Errorf("want %v, got %v", fake, got.Error())
	}
	if _, err := p.Analyze(nil); err != fake {
		t.Errorf("want %v, got %v", fake, err)
	}
	if _, err := p.String(); err != fake {
		t.Errorf("want %v, got %v", fake, err)
	}
	if _, err := p.WriteFile(t.TempDir() + "/out"); err != fake {
		t.Errorf("want %v, got %v", fake, err)
	}
	p.SetError(nil)
	if p.Error() != nil {
		t.Errorf("want nil error status after SetError(nil), got %v", p.Error())
	}
}

type closeCounter struct {
	io.Reader
	closes int
}

func (c *closeCounter) Close() error {
	c.closes++
	return nil
}

func TestSetErrorClosesReader(t *testing.T) {
	t.Parallel()
	src := &closeCounter{Reader: strings.NewReader("data")}
	p := NewPipe().WithReader(src)
	p.SetError(errors.New("oops"))
	if src.closes != 1 {
		t.Errorf("want reader closed once, got %d closes", src.closes)
	}
}

func TestAutoCloserClosesAtEOF(t *testing.T) {
	t.Parallel()
	f, err := os.Open("testdata/scenario.log")
	if err != nil {
		t.Fatal(err)
	}
	a := newAutoCloser(f)
	if _, err := io.ReadAll(a); err != nil {
		t.Fatal(err)
	}
	if _, err := io.ReadAll(a); err == nil {
		t.Error("input not closed after reading")
	}
}

func TestAutoCloserWrapsNonClosers(t *testing.T) {
	t.Parallel()
	a := newAutoCloser(strings.NewReader("hello"))
	got, err := io.ReadAll(a)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Errorf("want %q, got %q", "hello", got)
	}
	if err := a.Close(); err != nil {
		t.Error(err)
	}
}

func TestWithSourceAndWithStdoutOnNilPipe(t *testing.T) {
	t.Parallel()
	var p *Pipe
	if p.WithSource("x") != nil || p.WithStdout(io.Discard) != nil || p.WithReader(strings.NewReader("")) != nil {
		t.Error("want nil from With* on nil pipe")
	}
}
