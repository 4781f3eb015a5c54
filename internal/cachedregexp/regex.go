// Package cachedregexp caches compiled regular expressions so that analyzers
// invoked once per file do not recompile their patterns on every call.
//
// Patterns are compiled with the standard regexp package, whose RE2 engine
// matches in linear time; adversarial manifest content cannot trigger
// catastrophic backtracking.
package cachedregexp

import (
	"regexp"
	"sync"
)

var cache sync.Map

// MustCompile is like regexp.MustCompile, backed by a process-wide cache.
func MustCompile(exp string) *regexp.Regexp {
	compiled, ok := cache.Load(exp)
	if !ok {
		compiled, _ = cache.LoadOrStore(exp, regexp.MustCompile(exp))
	}

	return compiled.(*regexp.Regexp)
}
