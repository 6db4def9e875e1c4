// Package execpolicy is the façade over the policy engine's components
// (path canonicalizer, search-path resolver, policy-file cache,
// association registry, argument classifier, decision engine, and
// dispatch). It is what the entry-point adapters in package interceptor,
// and the execcensor CLI, build on.
package execpolicy

import (
	"log/slog"
	"sync"

	"github.com/sandboxtools/execcensor/internal/assoc"
	"github.com/sandboxtools/execcensor/internal/decision"
	"github.com/sandboxtools/execcensor/internal/dispatch"
	"github.com/sandboxtools/execcensor/internal/policy"
)

// DefaultPaths are the three fixed policy file locations the spec
// describes. They may be overridden per Engine.
var DefaultPaths = struct {
	Helpers      string
	ManagedBins  string
	ManagedFiles string
}{
	Helpers:      "/etc/firejail/self/helper-bins.list",
	ManagedBins:  "/etc/firejail/self/managed-bins.list",
	ManagedFiles: "/etc/firejail/self/managed-files.list",
}

// Paths holds the on-disk locations of the three policy files.
type Paths struct {
	Helpers      string
	ManagedBins  string
	ManagedFiles string
}

// DefaultFilePaths returns Paths populated with the spec's fixed
// locations.
func DefaultFilePaths() Paths {
	return Paths{
		Helpers:      DefaultPaths.Helpers,
		ManagedBins:  DefaultPaths.ManagedBins,
		ManagedFiles: DefaultPaths.ManagedFiles,
	}
}

// Engine bundles the lazily-initialized, process-wide singletons the spec
// calls for: the policy-file cache and the association registry. An
// Engine is safe for concurrent use from any goroutine, including after a
// fork, matching the "synchronous, callable from any thread" contract.
type Engine struct {
	Paths    Paths
	Caller   string // this process's own resolved path, for association lookups
	cache    *policy.Cache
	registry *assoc.Registry
	initOnce sync.Once
	log      *slog.Logger
}

// New returns an Engine using the given paths. The association registry
// and policy cache are built lazily on first use (Lists, Decide or
// SetRegistry).
func New(paths Paths, caller string, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{Paths: paths, Caller: caller, log: log}
}

func (e *Engine) init() {
	e.initOnce.Do(func() {
		e.cache = policy.NewCache()
		reg, err := assoc.NewDefaultRegistry()
		if err != nil {
			e.log.Warn("execpolicy: default association table rejected", "error", err)
			reg = &assoc.Registry{}
		}
		e.registry = reg
	})
}

// SetRegistry overrides the lazily-built default association registry,
// e.g. with one loaded via assoc.LoadJSONC from a provisioned table.
func (e *Engine) SetRegistry(reg *assoc.Registry) {
	e.init()
	e.registry = reg
}

// Lists reads the current contents of the three policy files through the
// cache, refreshing any that changed on disk since the last call.
func (e *Engine) Lists() decision.Lists {
	e.init()
	return decision.Lists{
		Helpers:      e.cache.Get(e.Paths.Helpers),
		ManagedBins:  e.cache.Get(e.Paths.ManagedBins),
		ManagedFiles: e.cache.Get(e.Paths.ManagedFiles),
	}
}

// Decide runs the full decision pipeline (components C-F) for one exec
// call.
func (e *Engine) Decide(target string, argv []string) decision.Split {
	e.init()
	call := decision.Call{Target: target, Argv: argv}
	return decision.Decide(call, e.Lists(), e.registry, e.Caller)
}

// Dispatch runs the dispatch protocol (component G) for a previously
// decided split.
func (e *Engine) Dispatch(split decision.Split, envp []string, exec dispatch.Execer) dispatch.Result {
	return dispatch.Run(split, envp, exec, e.log)
}

// DecideAndDispatch is the convenience entry point the three interception
// adapters use: decide, then dispatch, in one call.
func (e *Engine) DecideAndDispatch(target string, argv, envp []string, exec dispatch.Execer) dispatch.Result {
	return e.Dispatch(e.Decide(target, argv), envp, exec)
}
