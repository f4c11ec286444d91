package logscan

import (
	"regexp"
	"strings"
)

var (
	// Any 1-3 digit group is accepted, so 999.999.999.999 counts as an
	// address.
	ipPattern = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

	// The path ends at whitespace or at the quote closing the request field.
	endpointPattern = regexp.MustCompile(`"(?:GET|POST|PUT|DELETE|HEAD|OPTIONS|PATCH) (/[^\s"]*)`)
)

// DefaultFailureMarkers are the substrings whose presence anywhere in a log
// line marks it as a failed login attempt.
var DefaultFailureMarkers = []string{"401", "Invalid credentials"}

// Matcher extracts the interesting fields from a single log line.
type Matcher struct {
	markers []string
}

// NewMatcher returns a Matcher that treats lines containing any of markers
// as failed logins. With no markers, DefaultFailureMarkers are used. Empty
// markers are ignored.
func NewMatcher(markers ...string) *Matcher {
	if len(markers) == 0 {
		markers = DefaultFailureMarkers
	}
	m := &Matcher{}
	for _, marker := range markers {
		if marker != "" {
			m.markers = append(m.markers, marker)
		}
	}
	return m
}

// IP returns the first IPv4-shaped token in line, if there is one.
func (m *Matcher) IP(line string) (string, bool) {
	ip := ipPattern.FindString(line)
	return ip, ip != ""
}

// Endpoint returns the path of the first quoted HTTP request in line, if there
// is one. The path runs from the leading slash up to the next whitespace or
// closing quote.
func (m *Matcher) Endpoint(line string) (string, bool) {
	match := endpointPattern.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// FailedLogin reports whether line carries a failed login signal. This is a
// plain substring test, so a "401" anywhere in the line counts, not just in
// the status field.
func (m *Matcher) FailedLogin(line string) bool {
	for _, marker := range m.markers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// Markers returns the failure markers the matcher looks for.
func (m *Matcher) Markers() []string {
	return append([]string(nil), m.markers...)
}
