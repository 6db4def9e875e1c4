// Package decision implements the decision engine (component F): it
// combines target classification, argument classification, and the
// association registry into an (allowed, forbidden) split for one exec
// call.
package decision

import (
	"github.com/sandboxtools/execcensor/internal/assoc"
	"github.com/sandboxtools/execcensor/internal/classify"
	"github.com/sandboxtools/execcensor/internal/dtag"
	"github.com/sandboxtools/execcensor/internal/policy"
)

// Call is a requested execve(2)-style invocation: a target executable path
// plus its argv (argv[0] is conventionally the program name, not
// necessarily equal to Target).
type Call struct {
	Target string
	Argv   []string
}

// Lists bundles the three policy lists a decision is made against.
type Lists struct {
	Helpers      policy.List
	ManagedBins  policy.List
	ManagedFiles policy.List
}

// Split is the outcome of Decide: at most one of Allowed or Forbidden is
// non-empty; both are empty only for a malformed, never-executed call.
type Split struct {
	Allowed   *Call
	Forbidden *Call
	ArgTags   []dtag.Tag // parallel to Argv, empty when the target itself was forbidden
}

// Decide runs the target binary through the association registry and
// policy lists, then — if clear — classifies every argument. Per the
// spec's conservative-widening rule, any single disallowed argument
// delegates the entire call, not just the offending argument.
func Decide(call Call, lists Lists, registry *assoc.Registry, caller string) Split {
	targetTag := classifyTarget(call.Target, lists, registry, caller)
	if !dtag.DefaultPolicy().Allows(targetTag) {
		return Split{Forbidden: &call}
	}

	tags := make([]dtag.Tag, len(call.Argv))
	forbiddenBearing := false
	for i, arg := range call.Argv {
		if i == 0 {
			tags[i] = targetTag
			continue
		}
		tags[i] = classify.Argument(arg, lists.ManagedFiles)
		if !dtag.DefaultPolicy().Allows(tags[i]) {
			forbiddenBearing = true
		}
	}

	if forbiddenBearing {
		return Split{Forbidden: &call, ArgTags: tags}
	}
	return Split{Allowed: &call, ArgTags: tags}
}

// classifyTarget tags the exec target: helpers and association-group
// members are Helpers, managed-bins entries are SandboxManaged, and
// everything else falls through to Unspecified. SandboxManaged is not in
// the default policy, so Decide forbids a managed-bins target outright and
// the whole call is delegated to the supervisor via Dispatch.
func classifyTarget(target string, lists Lists, registry *assoc.Registry, caller string) dtag.Tag {
	if lists.Helpers.Match(target) {
		return dtag.Helpers
	}
	if registry != nil && caller != "" && registry.IsAssociated(caller, target) {
		return dtag.Helpers
	}
	if lists.ManagedBins.Match(target) {
		return dtag.SandboxManaged
	}
	return dtag.Unspecified
}

// ForbiddenBearing reports whether any tag in tags lies outside
// {Helpers, Unspecified}.
func ForbiddenBearing(tags []dtag.Tag) bool {
	policy := dtag.DefaultPolicy()
	for _, t := range tags {
		if !policy.Allows(t) {
			return true
		}
	}
	return false
}
