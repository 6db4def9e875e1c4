// Package scenarios codifies the spec's literal end-to-end scenarios
// S1, S2, S3 and S6 as replayable fixtures, so both the test suite and the
// execcensor CLI's "replay" command exercise the identical inputs.
package scenarios

import (
	"github.com/sandboxtools/execcensor/internal/decision"
	"github.com/sandboxtools/execcensor/internal/dispatch"
	"github.com/sandboxtools/execcensor/internal/policy"
)

// Scenario is one named, self-contained exec-decision fixture.
type Scenario struct {
	Name   string
	Target string
	Argv   []string
	Lists  decision.Lists
	Env    []string
}

// Named returns five fixtures: S1, S2, S3, and S6 split into S6-managed
// and S6-unspecified (S5's pure canonicalization case and S4's descriptor-validation
// case are covered directly by pathres/interceptor tests instead, since
// they do not flow through Decide/Dispatch).
func Named() []Scenario {
	return []Scenario{
		{
			Name:   "S1",
			Target: "/usr/bin/firefox",
			Argv:   []string{"firefox"},
			Lists: decision.Lists{
				Helpers: policy.List{"/usr/bin/firefox"},
			},
		},
		{
			Name:   "S2",
			Target: "/usr/bin/vlc",
			Argv:   []string{"vlc", "/secret/song.mp3"},
			Lists: decision.Lists{
				Helpers:      policy.List{"/usr/bin/vlc"},
				ManagedFiles: policy.List{"/secret"},
			},
		},
		{
			Name:   "S3",
			Target: "/usr/bin/vlc",
			Argv:   []string{"vlc", "a.mp3"},
			Lists: decision.Lists{
				ManagedBins: policy.List{"/usr/bin/vlc"},
			},
		},
		{
			Name:   "S6-managed",
			Target: "/usr/bin/cat",
			Argv:   []string{"cat", "/tmp/b/sub/file"},
			Lists: decision.Lists{
				Helpers:      policy.List{"/usr/bin/cat"},
				ManagedFiles: policy.List{"/tmp/a", "/tmp/b"},
			},
		},
		{
			Name:   "S6-unspecified",
			Target: "/usr/bin/cat",
			Argv:   []string{"cat", "/tmp/c"},
			Lists: decision.Lists{
				Helpers:      policy.List{"/usr/bin/cat"},
				ManagedFiles: policy.List{"/tmp/a", "/tmp/b"},
			},
		},
	}
}

// Run decides and dispatches sc against exec, returning the outcome.
func (sc Scenario) Run(exec dispatch.Execer) dispatch.Result {
	call := decision.Call{Target: sc.Target, Argv: sc.Argv}
	split := decision.Decide(call, sc.Lists, nil, "")
	return dispatch.Run(split, sc.Env, exec, nil)
}
