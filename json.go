package logscan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/itchyny/gojq"
)

// JSON returns the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Pipe returns a pipe containing the report as JSON, ready for filtering with
// JQ.
func (r *Report) Pipe() *Pipe {
	data, err := r.JSON()
	if err != nil {
		return NewPipe().WithError(err)
	}
	return NewPipe().WithSource(r.Source).WithReader(bytes.NewReader(data))
}

// JQ executes query on the pipe's contents, which must be one or more JSON
// values, and returns a pipe with one compact JSON result per line. If the
// query cannot be parsed or compiled, if the input is not valid JSON, or if
// the query fails at run time, the pipe's error status is set.
//
// For example, to list just the suspicious addresses in a report:
//
//	report.Pipe().JQ(".suspicious_activity[].key").Stdout()
func (p *Pipe) JQ(query string) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	parsed, err := gojq.Parse(query)
	if err != nil {
		return p.WithError(fmt.Errorf("parsing jq query %q: %w", query, err))
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return p.WithError(fmt.Errorf("compiling jq query %q: %w", query, err))
	}
	defer p.Close()
	var out strings.Builder
	dec := json.NewDecoder(p)
	for {
		var input interface{}
		err := dec.Decode(&input)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return p.WithError(fmt.Errorf("decoding jq input: %w", err))
		}
		iter := code.Run(input)
		for {
			v, ok := iter.Next()
			if !ok {
				break
			}
			if err, ok := v.(error); ok {
				return p.WithError(err)
			}
			result, err := json.Marshal(v)
			if err != nil {
				return p.WithError(err)
			}
			out.Write(result)
			out.WriteRune('\n')
		}
	}
	return Echo(out.String()).WithSource(p.source).WithStdout(p.stdout)
}
