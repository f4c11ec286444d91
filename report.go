package logscan

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// NoEndpoint is what MostFrequentEndpoint returns when no request path was
// seen at all.
var NoEndpoint = Entry{Key: "None", Count: 0}

// RequestsPerIP ranks IP addresses by request count, busiest first. Addresses
// with equal counts appear in the order they were first seen.
func RequestsPerIP(ips *Freq) []Entry {
	return ips.Ranked()
}

// MostFrequentEndpoint returns the most accessed endpoint, preferring the one
// seen first on a tie, or NoEndpoint if endpoints is empty.
func MostFrequentEndpoint(endpoints *Freq) Entry {
	top, ok := endpoints.Top()
	if !ok {
		return NoEndpoint
	}
	return top
}

// SuspiciousActivity returns the IP addresses with more than threshold failed
// logins, in the order they were first seen.
func SuspiciousActivity(failedLogins *Freq, threshold int) []Entry {
	return failedLogins.Above(threshold)
}

// Report is the summary of one analysis run, ready to be rendered or
// exported.
type Report struct {
	RunID                string  `json:"run_id"`
	Source               string  `json:"source,omitempty"`
	Lines                int     `json:"lines"`
	Threshold            int     `json:"threshold"`
	RequestsPerIP        []Entry `json:"requests_per_ip"`
	MostFrequentEndpoint Entry   `json:"most_frequent_endpoint"`
	SuspiciousActivity   []Entry `json:"suspicious_activity"`
}

// NewReport summarises res using the threshold from cfg.
func NewReport(res *Result, cfg Config) *Report {
	if res == nil {
		res = NewResult()
	}
	return &Report{
		RunID:                uuid.NewString(),
		Lines:                res.Lines,
		Threshold:            cfg.Threshold,
		RequestsPerIP:        nonNil(RequestsPerIP(res.IPs)),
		MostFrequentEndpoint: MostFrequentEndpoint(res.Endpoints),
		SuspiciousActivity:   nonNil(SuspiciousActivity(res.FailedLogins, cfg.Threshold)),
	}
}

// nonNil keeps empty sections as [] rather than null in JSON.
func nonNil(entries []Entry) []Entry {
	if entries == nil {
		return []Entry{}
	}
	return entries
}

// WithSource records the name of the analyzed log and returns the report.
func (r *Report) WithSource(source string) *Report {
	r.Source = source
	return r
}

// HasEndpoint reports whether any endpoint was seen. Real endpoints always
// start with a slash, so they can never be mistaken for NoEndpoint.
func (r *Report) HasEndpoint() bool {
	return r.MostFrequentEndpoint != NoEndpoint
}

const banner = `==============================
     LOG ANALYSIS REPORT
==============================

`

// Render writes the report to w as a banner followed by one titled table per
// section. Empty endpoint and suspicious activity sections are replaced by a
// one-line notice.
func (r *Report) Render(w io.Writer) error {
	var b strings.Builder
	b.WriteString(banner)

	b.WriteString("\n**Requests per IP**\n")
	if err := WriteTable(&b, []string{"IP Address", "Request Count"}, rows(r.RequestsPerIP)); err != nil {
		return err
	}

	b.WriteString("\n**Most Frequently Accessed Endpoint**\n")
	if r.HasEndpoint() {
		if err := WriteTable(&b, []string{"Endpoint", "Access Count"}, rows([]Entry{r.MostFrequentEndpoint})); err != nil {
			return err
		}
	} else {
		b.WriteString("No endpoints accessed.\n")
	}

	b.WriteString("\n**Suspicious Activity Detected**\n")
	if len(r.SuspiciousActivity) > 0 {
		if err := WriteTable(&b, []string{"IP Address", "Failed Login Attempts"}, rows(r.SuspiciousActivity)); err != nil {
			return err
		}
	} else {
		b.WriteString("No suspicious activity detected.\n")
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func rows(entries []Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Key, strconv.Itoa(e.Count)})
	}
	return rows
}
