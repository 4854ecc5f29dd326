package check

import (
	"context"
	"fmt"
	"time"
)

// Runner executes probes from a registry in order and folds the results
// into a Report.
type Runner struct {
	Registry *Registry
	Env      *Env
	Version  string
	// Fix applies each fixable probe's remedy after the initial pass and
	// re-runs that probe to confirm.
	Fix bool
}

// NewRunner wires a runner over the default registry.
func NewRunner(env *Env, version string, fix bool) *Runner {
	return &Runner{Registry: NewRegistry(), Env: env, Version: version, Fix: fix}
}

// Run executes the named checks (all of them when names is empty). Unknown
// names fail the whole invocation before any probe runs.
func (r *Runner) Run(ctx context.Context, names []string) (*Report, error) {
	var probes []Probe
	if len(names) == 0 {
		probes = r.Registry.Probes()
	} else {
		for _, name := range names {
			p, err := r.Registry.Resolve(name)
			if err != nil {
				return nil, err
			}
			probes = append(probes, p)
		}
	}

	rep := &Report{
		Version:   r.Version,
		Timestamp: time.Now(),
		Checks:    make([]Result, 0, len(probes)),
	}

	for _, p := range probes {
		rep.Checks = append(rep.Checks, r.runOne(ctx, p))
	}

	if r.Fix {
		for i, res := range rep.Checks {
			if res.Status == StatusPass || !res.Fixable {
				continue
			}
			rep.Checks[i] = r.fixOne(ctx, probes[i], res)
		}
	}

	rep.finalize()
	return rep, nil
}

func (r *Runner) runOne(ctx context.Context, p Probe) Result {
	start := time.Now()
	res := p.Run(ctx, r.Env)
	r.Env.Log.Debug().
		Str("check", p.ID()).
		Str("status", string(res.Status)).
		Dur("elapsed", time.Since(start)).
		Msg("probe finished")
	return res
}

// fixOne applies the probe's remedy and re-runs it so the final report
// reflects the post-fix state. A fix failure becomes a fail result on that
// check; later fixes still run.
func (r *Runner) fixOne(ctx context.Context, p Probe, prior Result) Result {
	fixer, ok := p.(Fixable)
	if !ok {
		return prior
	}
	r.Env.Log.Debug().Str("check", p.ID()).Msg("applying fix")
	if err := fixer.Fix(ctx, r.Env); err != nil {
		return Result{
			Name:    prior.Name,
			Status:  StatusFail,
			Message: prior.Message,
			Details: fmt.Sprintf("fix failed: %v", err),
			Fixable: true,
		}
	}
	return r.runOne(ctx, p)
}
