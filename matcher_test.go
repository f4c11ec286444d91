package logscan_test

import (
	"testing"

	"github.com/bitfield/logscan"
	"github.com/google/go-cmp/cmp"
)

func TestMatcherIP(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		line   string
		want   string
		wantOK bool
	}{
		{`10.0.0.1 - - "GET /login" 401`, "10.0.0.1", true},
		{`client 1.2.3.4 via proxy 5.6.7.8`, "1.2.3.4", true},
		{`999.999.999.999 - - "GET /"`, "999.999.999.999", true},
		{`1234.5.6.7 - -`, "234.5.6.7", true},
		{`1.2.3 - - "GET /"`, "", false},
		{`no address here 401`, "", false},
		{``, "", false},
	}
	m := logscan.NewMatcher()
	for _, tc := range tcs {
		got, ok := m.IP(tc.line)
		if ok != tc.wantOK {
			t.Errorf("%q: want ok %t, got %t", tc.line, tc.wantOK, ok)
		}
		if got != tc.want {
			t.Errorf("%q: want %q, got %q", tc.line, tc.want, got)
		}
	}
}

func TestMatcherEndpoint(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		line   string
		want   string
		wantOK bool
	}{
		{`1.1.1.1 - - "GET /home HTTP/1.1" 200`, "/home", true},
		{`1.1.1.1 - - "GET /login" 401`, "/login", true},
		{`"DELETE /api/v1/users/7?force=true HTTP/2"`, "/api/v1/users/7?force=true", true},
		{`"PATCH /a" then "POST /b"`, "/a", true},
		{`"OPTIONS / HTTP/1.1"`, "/", true},
		{`GET /unquoted HTTP/1.1`, "", false},
		{`"FETCH /nope HTTP/1.1"`, "", false},
		{`"GET  /double-space"`, "", false},
		{`"GET http://example.com/ HTTP/1.1"`, "", false},
	}
	m := logscan.NewMatcher()
	for _, tc := range tcs {
		got, ok := m.Endpoint(tc.line)
		if ok != tc.wantOK {
			t.Errorf("%q: want ok %t, got %t", tc.line, tc.wantOK, ok)
		}
		if got != tc.want {
			t.Errorf("%q: want %q, got %q", tc.line, tc.want, got)
		}
	}
}

func TestMatcherFailedLogin(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		line string
		want bool
	}{
		{`1.1.1.1 "POST /login" 401 128`, true},
		{`1.1.1.1 "POST /login" 200 "Invalid credentials"`, true},
		{`1.1.1.1 "GET /report" 200 4012`, true},
		{`1.1.1.1 "GET /home" 200 OK`, false},
		{`invalid credentials`, false},
	}
	m := logscan.NewMatcher()
	for _, tc := range tcs {
		if got := m.FailedLogin(tc.line); got != tc.want {
			t.Errorf("%q: want %t, got %t", tc.line, tc.want, got)
		}
	}
}

func TestNewMatcherUsesCustomMarkers(t *testing.T) {
	t.Parallel()
	m := logscan.NewMatcher("403", "", "denied")
	want := []string{"403", "denied"}
	if !cmp.Equal(want, m.Markers()) {
		t.Error(cmp.Diff(want, m.Markers()))
	}
	if m.FailedLogin(`1.1.1.1 "POST /login" 401`) {
		t.Error("custom matcher should not match default marker 401")
	}
	if !m.FailedLogin(`1.1.1.1 "POST /login" 200 access denied`) {
		t.Error("want match on custom marker")
	}
}

func TestNewMatcherDefaultsToDefaultFailureMarkers(t *testing.T) {
	t.Parallel()
	got := logscan.NewMatcher().Markers()
	if !cmp.Equal(logscan.DefaultFailureMarkers, got) {
		t.Error(cmp.Diff(logscan.DefaultFailureMarkers, got))
	}
}
