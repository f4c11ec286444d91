package logscan

import (
	"io"
)

// autoCloser wraps a log source and closes it, if closable, as soon as it
// has been read to the end. Log files are therefore released even when the
// caller never gets round to calling Close.
type autoCloser struct {
	r io.Reader
}

func newAutoCloser(r io.Reader) autoCloser {
	if _, ok := r.(io.Closer); !ok {
		return autoCloser{io.NopCloser(r)}
	}
	return autoCloser{r}
}

// Read reads from the underlying source. At end of input the source is
// closed and io.EOF is returned.
func (a autoCloser) Read(b []byte) (n int, err error) {
	if a.r == nil {
		return 0, io.EOF
	}
	n, err = a.r.Read(b)
	if err == io.EOF {
		a.Close()
	}
	return n, err
}

// Close closes the underlying source, if there is one.
func (a autoCloser) Close() error {
	if a.r == nil {
		return nil
	}
	return a.r.(io.Closer).Close()
}
