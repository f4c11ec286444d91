// Package logscan scans web-server access logs and reports on who is using
// the server, what they ask for most, and who keeps failing to log in.
//
// Logs are read through a Pipe, so sources and filters can be chained before
// the log is analyzed:
//
//	res, err := logscan.File("access.log").Reject("healthz").Analyze(nil)
//
// If any pipe operation results in an error, the pipe's Error method will
// return that error, and all subsequent pipe operations will be no-ops. Thus
// you can chain a whole series of operations and check the error once, at the
// end:
//
//	p := logscan.File("doesnt_exist.log")
//	res, err := p.Match("POST").Analyze(nil) // res is nil
//	fmt.Println(errors.Is(err, logscan.ErrSourceUnavailable))
//	// Output: true
//
// A Result holds three frequency tables (requests per IP, accesses per
// endpoint, failed logins per IP). NewReport turns a Result into a Report,
// which can be rendered as text tables, exported as CSV, or queried as JSON.
package logscan

import (
	"io"
	"os"
)

// Pipe carries log lines from a source (a file, a command, stdin or a
// string) through any filters to a sink such as Analyze or WriteFile.
type Pipe struct {
	Reader autoCloser
	source string
	err    error
	stdout io.Writer
}

// NewPipe returns a pipe with no log source attached. Attach one with
// WithReader.
func NewPipe() *Pipe {
	return &Pipe{
		Reader: autoCloser{},
		stdout: os.Stdout,
	}
}

// Close releases the log source, for example closing the log file or the
// command's output. A nil pipe, or one already drained, has nothing to release.
func (p *Pipe) Close() error {
	if p == nil {
		return nil
	}
	return p.Reader.Close()
}

// Error reports why the log could not be read or filtered. A nil error means
// every step so far succeeded.
func (p *Pipe) Error() error {
	if p == nil {
		return nil
	}
	return p.err
}

// Read reads up to len(b) bytes of log text into b. At end of input, or on a
// nil pipe, Read returns 0, io.EOF.
func (p *Pipe) Read(b []byte) (int, error) {
	if p == nil {
		return 0, io.EOF
	}
	return p.Reader.Read(b)
}

// SetError marks the pipe as failed with err, after which later steps pass the
// error along untouched. The log source is released as soon as a failure is
// recorded. SetError(nil) clears the failure.
func (p *Pipe) SetError(err error) {
	if p == nil {
		return
	}
	if err != nil {
		p.Close()
	}
	p.err = err
}

// Source returns the name of the log source (a file path, a command line, or
// "stdin"). Pipes created by Echo have no name.
func (p *Pipe) Source() string {
	if p == nil {
		return ""
	}
	return p.source
}

// WithReader makes r the pipe's log source. A source that is also an io.Closer
// is closed once its last line has been read.
func (p *Pipe) WithReader(r io.Reader) *Pipe {
	if p == nil {
		return nil
	}
	p.Reader = newAutoCloser(r)
	return p
}

// WithSource names the pipe's source. The name is used in error messages.
func (p *Pipe) WithSource(name string) *Pipe {
	if p == nil {
		return nil
	}
	p.source = name
	return p
}

// WithStdout sets where Stdout writes filtered log lines. Pipes write to
// os.Stdout unless told otherwise.
func (p *Pipe) WithStdout(w io.Writer) *Pipe {
	if p == nil {
		return nil
	}
	p.stdout = w
	return p
}

// WithError is SetError for use in a chain: it records err and returns p.
func (p *Pipe) WithError(err error) *Pipe {
	p.SetError(err)
	return p
}
