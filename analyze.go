package logscan

// Result holds the frequency tables built from one pass over a log.
type Result struct {
	// IPs counts requests per client IP address.
	IPs *Freq
	// Endpoints counts accesses per request path.
	Endpoints *Freq
	// FailedLogins counts failed login attempts per client IP address.
	FailedLogins *Freq
	// Lines is the number of lines read, matching or not.
	Lines int
}

// NewResult returns a Result with empty tables.
func NewResult() *Result {
	return &Result{
		IPs:          NewFreq(),
		Endpoints:    NewFreq(),
		FailedLogins: NewFreq(),
	}
}

// Add counts a single log line. A failed login is only attributed when the
// line also yields an IP address.
func (r *Result) Add(m *Matcher, line string) {
	r.Lines++
	ip, hasIP := m.IP(line)
	endpoint, hasEndpoint := m.Endpoint(line)
	if hasIP {
		r.IPs.Add(ip)
	}
	if hasEndpoint {
		r.Endpoints.Add(endpoint)
	}
	if hasIP && m.FailedLogin(line) {
		r.FailedLogins.Add(ip)
	}
}

// Analyze reads every line from the pipe and counts it using m, or a default
// Matcher if m is nil. The pipe is closed after reading.
//
// If the pipe already has error status, or reading fails part way, Analyze
// returns a nil Result and the error; a *SourceError matching
// ErrSourceUnavailable for read failures. There is no partial result. Lines
// of any length are counted.
func (p *Pipe) Analyze(m *Matcher) (*Result, error) {
	if p == nil {
		return NewResult(), nil
	}
	if p.Error() != nil {
		return nil, p.Error()
	}
	defer p.Close()
	if m == nil {
		m = NewMatcher()
	}
	res := NewResult()
	err := readLines(p.Reader, func(line string) {
		res.Add(m, line)
	})
	if err != nil {
		p.SetError(&SourceError{Source: p.source, Err: err})
		return nil, p.Error()
	}
	return res, nil
}

// AnalyzeFile is a convenience for File(path).Analyze(m).
func AnalyzeFile(path string, m *Matcher) (*Result, error) {
	return File(path).Analyze(m)
}
