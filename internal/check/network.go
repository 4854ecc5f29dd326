package check

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"
)

// providerEndpoints are the AI provider hosts OpenClaw talks to. Any HTTP
// response, even 4xx, proves the host is reachable.
var providerEndpoints = map[string]string{
	"Anthropic": "https://api.anthropic.com",
	"OpenAI":    "https://api.openai.com",
	"Google AI": "https://generativelanguage.googleapis.com",
	"Groq":      "https://api.groq.com",
}

// NetworkProbe tests connectivity to each provider endpoint independently;
// one unreachable endpoint never short-circuits the rest.
type NetworkProbe struct{}

func (p *NetworkProbe) ID() string          { return "network" }
func (p *NetworkProbe) Name() string        { return "Network" }
func (p *NetworkProbe) Description() string { return "Tests connectivity to AI providers" }

func (p *NetworkProbe) Run(ctx context.Context, env *Env) Result {
	names := make([]string, 0, len(providerEndpoints))
	for name := range providerEndpoints {
		names = append(names, name)
	}
	sort.Strings(names)

	var reachable, unreachable []string
	for _, name := range names {
		if reason := headEndpoint(ctx, env.HTTP, providerEndpoints[name]); reason == "" {
			reachable = append(reachable, name)
		} else {
			unreachable = append(unreachable, fmt.Sprintf("%s (%s)", name, reason))
		}
	}

	if len(reachable) == 0 {
		return Result{
			Name:        p.Name(),
			Status:      StatusFail,
			Message:     "Cannot reach any AI providers",
			Details:     "All connection attempts failed: " + strings.Join(unreachable, ", "),
			Suggestions: networkSuggestions(),
		}
	}
	if len(unreachable) > 0 {
		return Result{
			Name:        p.Name(),
			Status:      StatusWarn,
			Message:     "Some providers unreachable: " + strings.Join(unreachable, ", "),
			Details:     "Reachable: " + strings.Join(reachable, ", "),
			Suggestions: networkSuggestions(),
		}
	}
	return Result{
		Name:    p.Name(),
		Status:  StatusPass,
		Message: "Network connectivity OK",
		Details: "Reachable: " + strings.Join(reachable, ", "),
	}
}

// headEndpoint returns "" when the endpoint answered, otherwise a short
// reason suitable for the warn line.
func headEndpoint(ctx context.Context, client *http.Client, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return "invalid URL"
	}
	resp, err := client.Do(req)
	if err != nil {
		var nerr net.Error
		if errors.As(err, &nerr) && nerr.Timeout() {
			return "timeout"
		}
		return "connection failed"
	}
	resp.Body.Close()
	return ""
}

func networkSuggestions() []string {
	return []string{
		"Check your internet connection",
		"If behind a proxy, configure HTTP_PROXY and HTTPS_PROXY",
		"Check if a firewall is blocking outbound connections",
		"Try: curl https://api.anthropic.com to test manually",
	}
}
