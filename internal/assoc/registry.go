// Package assoc implements the association registry (component D): it
// groups cooperating helper binaries under a single main identity and
// answers "is X a helper of Y?".
package assoc

import (
	"fmt"
	"strings"
)

// Group is an unordered set of binary paths sharing one main key. Members
// is stored with the main key as its last element, matching the on-disk
// and in-memory representation the spec describes.
type Group struct {
	Members []string
}

// MainKey returns the group's designated representative path.
func (g Group) MainKey() string {
	if len(g.Members) == 0 {
		return ""
	}
	return g.Members[len(g.Members)-1]
}

// Registry is the built association registry: a sequence of groups plus an
// index mapping every member (including each main key) to its main key.
type Registry struct {
	groups []Group
	index  map[string]string
}

// NewRegistry builds a Registry from a table of groups. Each group's last
// entry is treated as its main key. It is an error for a path to appear as
// a member of more than one group.
func NewRegistry(table [][]string) (*Registry, error) {
	r := &Registry{
		groups: make([]Group, 0, len(table)),
		index:  make(map[string]string),
	}

	for _, members := range table {
		if len(members) == 0 {
			continue
		}
		group := Group{Members: append([]string(nil), members...)}
		mainKey := group.MainKey()

		for _, member := range group.Members {
			if existing, ok := r.index[member]; ok {
				return nil, fmt.Errorf("assoc: %q already belongs to group %q", member, existing)
			}
		}
		for _, member := range group.Members {
			r.index[member] = mainKey
		}
		r.groups = append(r.groups, group)
	}

	return r, nil
}

// IsAssociated reports whether callee is a member of caller's association
// group. An unknown caller is conservatively reported as not associated.
func (r *Registry) IsAssociated(caller, callee string) bool {
	mainKey, ok := r.index[caller]
	if !ok {
		return false
	}
	for _, g := range r.groups {
		if g.MainKey() != mainKey {
			continue
		}
		for _, m := range g.Members {
			if m == callee {
				return true
			}
		}
	}
	return false
}

// MembersOf returns the ordered member list of mainKey's group, or nil if
// mainKey does not head a group.
func (r *Registry) MembersOf(mainKey string) []string {
	for _, g := range r.groups {
		if g.MainKey() == mainKey {
			return g.Members
		}
	}
	return nil
}

// DescribeFor returns a colon-separated concatenation of the members of
// binary's group, or the empty string if binary is not a known member.
func (r *Registry) DescribeFor(binary string) string {
	mainKey, ok := r.index[binary]
	if !ok {
		return ""
	}
	return strings.Join(r.MembersOf(mainKey), ":")
}
