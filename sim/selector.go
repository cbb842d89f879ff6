package sim

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// A Selector decides which devices take part in a simulation, by device id
type Selector func(id string) bool

// DefaultRouterMatch is the id fragment that marks a device as a router
const DefaultRouterMatch = "R"

// MatchSubstring selects devices whose id contains s
func MatchSubstring(s string) Selector {
	return func(id string) bool {
		return strings.Contains(id, s)
	}
}

// MatchGlob selects devices whose id matches a shell style pattern, such as
// "R[0-9]*"
func MatchGlob(pattern string) (Selector, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid router glob '%s'", pattern)
	}
	return g.Match, nil
}

// All selects every device
func All() Selector {
	return func(string) bool { return true }
}
