package logscan

import (
	"fmt"
	"io"
	"os"
)

// String returns the contents of the pipe as a string, or an error, and closes
// the pipe after reading. If there is an error reading, the pipe's error
// status is also set.
func (p *Pipe) String() (string, error) {
	if p.Error() != nil {
		return "", p.Error()
	}
	defer p.Close()
	res, err := io.ReadAll(p)
	if err != nil {
		p.SetError(err)
		return "", err
	}
	return string(res), nil
}

// Stdout writes the contents of the pipe to the pipe's standard output (by
// default os.Stdout). It returns the number of bytes successfully written,
// plus a non-nil error if the write failed or if there was an error reading
// from the pipe. If the pipe has error status, Stdout returns zero plus the
// existing error.
func (p *Pipe) Stdout() (int, error) {
	if p == nil {
		return 0, nil
	}
	if p.Error() != nil {
		return 0, p.Error()
	}
	output, err := p.String()
	if err != nil {
		return 0, err
	}
	var w io.Writer = os.Stdout
	if p.stdout != nil {
		w = p.stdout
	}
	return fmt.Fprint(w, output)
}

// WriteFile writes the contents of the pipe to the specified file, truncating
// it if it already exists, and closes the pipe after reading. It returns the
// number of bytes successfully written, or an error. If there is an error
// reading or writing, the pipe's error status is also set.
func (p *Pipe) WriteFile(path string) (int64, error) {
	if p.Error() != nil {
		return 0, p.Error()
	}
	defer p.Close()
	out, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		p.SetError(err)
		return 0, err
	}
	wrote, err := io.Copy(out, p)
	if err != nil {
		out.Close()
		p.SetError(err)
		return 0, err
	}
	if err := out.Close(); err != nil {
		p.SetError(err)
		return 0, err
	}
	return wrote, nil
}
