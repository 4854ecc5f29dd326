// Package logscan classifies log lines against a fixed, ordered table of
// known failure patterns and maps each to a plain-language explanation.
package logscan

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"
)

// Severity of a matched category.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Rule pairs a line pattern with its human explanation. Rules are checked in
// order; the first match for a line wins.
type Rule struct {
	Category    string
	Pattern     *regexp.Regexp
	Message     string
	Explanation string
	Suggestion  string
	Severity    Severity
}

// Rules is the ordered matcher table. Order matters: a 429 line must
// classify as rate-limit even though it also mentions a connection.
var Rules = []Rule{
	{
		Category:    "rate-limit",
		Pattern:     regexp.MustCompile(`(?i)rate.?limit|too.?many.?requests|429`),
		Message:     "API rate limit exceeded",
		Explanation: "You've made too many API calls in a short time period.",
		Suggestion:  "Wait a few minutes before trying again, or upgrade your API plan for higher limits.",
		Severity:    SeverityWarning,
	},
	{
		Category:    "auth",
		Pattern:     regexp.MustCompile(`(?i)invalid.?api.?key|unauthorized|401|authentication.?failed`),
		Message:     "API authentication failed",
		Explanation: "Your API key is invalid, expired, or not authorized.",
		Suggestion:  "Check your API key in the config or environment variables. Get a new key from your provider's dashboard.",
		Severity:    SeverityError,
	},
	{
		Category:    "billing",
		Pattern:     regexp.MustCompile(`(?i)insufficient.?quota|billing|payment.?required|402`),
		Message:     "Billing/quota issue",
		Explanation: "Your API account has run out of credits or has a billing problem.",
		Suggestion:  "Add credits to your API account or check your payment method.",
		Severity:    SeverityError,
	},
	{
		Category:    "connection",
		Pattern:     regexp.MustCompile(`(?i)connection.?refused|ECONNREFUSED`),
		Message:     "Connection refused",
		Explanation: "Could not connect to the server. The service may be down.",
		Suggestion:  "Check your internet connection. Try again in a few minutes.",
		Severity:    SeverityError,
	},
	{
		Category:    "timeout",
		Pattern:     regexp.MustCompile(`(?i)connection.?timeout|ETIMEDOUT|timed?.?out`),
		Message:     "Connection timeout",
		Explanation: "The server took too long to respond.",
		Suggestion:  "Check your internet connection. The service may be experiencing high load.",
		Severity:    SeverityWarning,
	},
	{
		Category:    "dns",
		Pattern:     regexp.MustCompile(`(?i)ENOTFOUND|DNS|name.?resolution`),
		Message:     "DNS resolution failed",
		Explanation: "Could not find the server's address.",
		Suggestion:  "Check your internet connection and DNS settings.",
		Severity:    SeverityError,
	},
	{
		Category:    "ssl",
		Pattern:     regexp.MustCompile(`(?i)ssl|certificate|TLS|CERT`),
		Message:     "SSL/TLS certificate error",
		Explanation: "There's a problem with the secure connection.",
		Suggestion:  "Check your system date/time is correct. Your firewall may be intercepting traffic.",
		Severity:    SeverityError,
	},
	{
		Category:    "config-missing",
		Pattern:     regexp.MustCompile(`(?i)config.?not.?found|missing.?config`),
		Message:     "Configuration not found",
		Explanation: "OpenClaw couldn't find its configuration file.",
		Suggestion:  "Run 'openclaw init' to create a new configuration.",
		Severity:    SeverityError,
	},
	{
		Category:    "config-syntax",
		Pattern:     regexp.MustCompile(`(?i)invalid.?yaml|yaml.?parse|syntax.?error`),
		Message:     "Configuration syntax error",
		Explanation: "Your config file has invalid YAML syntax.",
		Suggestion:  "Check config.yaml for typos. Use a YAML validator to find errors.",
		Severity:    SeverityError,
	},
	{
		Category:    "permission",
		Pattern:     regexp.MustCompile(`(?i)permission.?denied|EACCES|access.?denied`),
		Message:     "Permission denied",
		Explanation: "OpenClaw doesn't have permission to access a file or directory.",
		Suggestion:  "Check file permissions. On Unix: chmod 755 ~/.openclaw",
		Severity:    SeverityError,
	},
	{
		Category:    "oom",
		Pattern:     regexp.MustCompile(`(?i)out.?of.?memory|ENOMEM|memory.?limit`),
		Message:     "Out of memory",
		Explanation: "The system ran out of available memory.",
		Suggestion:  "Close other applications. Consider increasing system RAM.",
		Severity:    SeverityError,
	},
	{
		Category:    "model-not-found",
		Pattern:     regexp.MustCompile(`(?i)model.?not.?found|invalid.?model`),
		Message:     "AI model not found",
		Explanation: "The specified AI model doesn't exist or isn't available.",
		Suggestion:  "Check the model name in your config. Use 'openclaw models' to see available options.",
		Severity:    SeverityError,
	},
	{
		Category:    "context-length",
		Pattern:     regexp.MustCompile(`(?i)context.?length|token.?limit|too.?long`),
		Message:     "Context length exceeded",
		Explanation: "Your message or conversation is too long for the AI model.",
		Suggestion:  "Try a shorter message or start a new conversation.",
		Severity:    SeverityWarning,
	},
	{
		Category:    "skill",
		Pattern:     regexp.MustCompile(`(?i)skill.?failed|skill.?error`),
		Message:     "Skill execution failed",
		Explanation: "One of OpenClaw's skills encountered an error.",
		Suggestion:  "Check the skill's configuration. Try disabling and re-enabling the skill.",
		Severity:    SeverityWarning,
	},
	{
		Category:    "channel",
		Pattern:     regexp.MustCompile(`(?i)channel.?disconnected|channel.?error`),
		Message:     "Messaging channel error",
		Explanation: "There's a problem with a messaging channel (WhatsApp, Telegram, etc.).",
		Suggestion:  "Re-authenticate the channel. Check your API tokens.",
		Severity:    SeverityWarning,
	},
}

// Classify returns the first rule matching the line, or nil when no rule
// matches (the line is then excluded from the error count).
func Classify(line string) *Rule {
	for i := range Rules {
		if Rules[i].Pattern.MatchString(line) {
			return &Rules[i]
		}
	}
	return nil
}

// Match is one classified log line.
type Match struct {
	Rule *Rule
	Line string
	File string
}

// Result of scanning one or more log files.
type Result struct {
	Matches []Match
	// LinesMatched is the total number of classified lines across all files.
	LinesMatched int
}

// Categories returns one representative match per category, preserving
// first-seen order.
func (r *Result) Categories() []Match {
	seen := map[string]bool{}
	var out []Match
	for _, m := range r.Matches {
		if seen[m.Rule.Category] {
			continue
		}
		seen[m.Rule.Category] = true
		out = append(out, m)
	}
	return out
}

// HasErrors reports whether any error-severity category matched.
func (r *Result) HasErrors() bool {
	for _, m := range r.Matches {
		if m.Rule.Severity == SeverityError {
			return true
		}
	}
	return false
}

const (
	// maxTailBytes bounds how much of each log file is read.
	maxTailBytes = 100 * 1024
	// maxLineLength truncates matched lines kept for display.
	maxLineLength = 200
)

// ScanReader classifies every line of r, recording matches under the given
// file label.
func ScanReader(r io.Reader, file string, res *Result) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		rule := Classify(line)
		if rule == nil {
			continue
		}
		res.LinesMatched++
		if len(line) > maxLineLength {
			line = line[:maxLineLength]
		}
		res.Matches = append(res.Matches, Match{Rule: rule, Line: line, File: file})
	}
	return sc.Err()
}

// ScanFile classifies the tail of the file at path, reading at most
// maxTailBytes from the end. A partial first line after seeking is skipped.
func ScanFile(path string, res *Result) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return err
	}
	var r io.Reader = f
	if st.Size() > maxTailBytes {
		if _, err := f.Seek(st.Size()-maxTailBytes, io.SeekStart); err != nil {
			return err
		}
		br := bufio.NewReader(f)
		if _, err := br.ReadString('\n'); err != nil && err != io.EOF {
			return err
		}
		r = br
	}
	return ScanReader(r, filepath.Base(path), res)
}

// RecentLogFiles returns log files in dir modified within maxAge, newest
// first, capped at limit.
func RecentLogFiles(dir string, maxAge time.Duration, limit int) []string {
	cutoff := time.Now().Add(-maxAge)
	type entry struct {
		path  string
		mtime time.Time
	}
	var found []entry
	for _, pattern := range []string{"*.log", "*.txt", "error*", "openclaw*"} {
		paths, _ := filepath.Glob(filepath.Join(dir, pattern))
		for _, p := range paths {
			st, err := os.Stat(p)
			if err != nil || !st.Mode().IsRegular() {
				continue
			}
			if st.ModTime().Before(cutoff) {
				continue
			}
			found = append(found, entry{p, st.ModTime()})
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].mtime.After(found[j].mtime) })
	var out []string
	seen := map[string]bool{}
	for _, e := range found {
		if seen[e.path] {
			continue
		}
		seen[e.path] = true
		out = append(out, e.path)
		if len(out) == limit {
			break
		}
	}
	return out
}
