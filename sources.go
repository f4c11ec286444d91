package logscan

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// Echo returns a pipe containing the supplied string.
func Echo(s string) *Pipe {
	return NewPipe().WithReader(strings.NewReader(s))
}

// Exec runs an external command and returns a pipe containing its standard
// output. This is useful for reading logs that need decompressing or
// fetching first, for example:
//
//	logscan.Exec("zcat /var/log/nginx/access.log.2.gz")
//
// The command line is split into arguments following shell quoting rules, but
// no shell is involved. If the command cannot be parsed, cannot be started, or
// exits with a non-zero status, the pipe's error status is set to a
// *SourceError.
func Exec(cmdLine string) *Pipe {
	p := NewPipe().WithSource(cmdLine)
	args, err := shell.Fields(cmdLine, nil)
	if err != nil {
		return p.WithError(&SourceError{Source: cmdLine, Err: err})
	}
	if len(args) == 0 {
		return p.WithError(&SourceError{Source: cmdLine, Err: errors.New("empty command")})
	}
	output, err := exec.Command(args[0], args[1:]...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			err = errors.New(strings.TrimSpace(string(exitErr.Stderr)))
		}
		return p.WithError(&SourceError{Source: cmdLine, Err: err})
	}
	return p.WithReader(strings.NewReader(string(output)))
}

// File returns a pipe associated with the named log file. If the file cannot
// be opened, the pipe's error status is set to a *SourceError.
func File(path string) *Pipe {
	p := NewPipe().WithSource(path)
	f, err := os.Open(path)
	if err != nil {
		return p.WithError(&SourceError{Source: path, Err: err})
	}
	return p.WithReader(f)
}

// Stdin returns a pipe which reads from the program's standard input.
func Stdin() *Pipe {
	return NewPipe().WithSource("stdin").WithReader(os.Stdin)
}
