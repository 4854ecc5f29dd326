// Package check defines the health probes, the registry that orders them,
// and the runner that executes them into a report.
package check

import "time"

// Status is the verdict of a single probe.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// Result is the outcome of one probe. Immutable once produced; the runner
// replaces a result wholesale after a fix rather than mutating it.
type Result struct {
	Name        string   `json:"name"`
	Status      Status   `json:"status"`
	Message     string   `json:"message"`
	Details     string   `json:"details,omitempty"`
	Fixable     bool     `json:"fixable"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Passed reports whether the result is pass or warn.
func (r Result) Passed() bool {
	return r.Status == StatusPass || r.Status == StatusWarn
}

// Report aggregates the results of one invocation.
type Report struct {
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Checks    []Result  `json:"checks"`

	Summary Summary `json:"summary"`
}

// Summary holds the derived verdict counts. Passed+Warnings+Failed always
// equals the number of executed checks.
type Summary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

func (r *Report) finalize() {
	r.Summary = Summary{}
	for _, c := range r.Checks {
		switch c.Status {
		case StatusPass:
			r.Summary.Passed++
		case StatusWarn:
			r.Summary.Warnings++
		case StatusFail:
			r.Summary.Failed++
		}
	}
}

// ExitCode is 0 when no check failed, 1 otherwise. Warnings never affect it.
func (r *Report) ExitCode() int {
	if r.Summary.Failed > 0 {
		return 1
	}
	return 0
}
