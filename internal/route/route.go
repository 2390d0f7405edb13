// Package route classifies request paths and decides, for a given
// session, whether a navigation may proceed or must be redirected.
//
// The decision is a UX convenience. The REST API authorizes every
// request on its own.
package route

import (
	"fmt"
	"strings"
)

type Classification int

const (
	Public Classification = iota
	Protected
	ProtectedAdmin
	AuthEntry
)

var classificationNames = map[Classification]string{
	Public:         "public",
	Protected:      "protected",
	ProtectedAdmin: "protected-admin",
	AuthEntry:      "auth-entry",
}

func (c Classification) String() string {
	if s, ok := classificationNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Classification(%d)", int(c))
}

func ParseClassification(s string) (Classification, error) {
	for c, name := range classificationNames {
		if name == s {
			return c, nil
		}
	}
	return Public, fmt.Errorf("unknown classification %q", s)
}

type Match int

const (
	Prefix Match = iota
	Exact
)

func ParseMatch(s string) (Match, error) {
	switch s {
	case "prefix":
		return Prefix, nil
	case "exact":
		return Exact, nil
	}
	return Prefix, fmt.Errorf("unknown match kind %q", s)
}

type Rule struct {
	Pattern        string
	Match          Match
	Classification Classification
}

func (r Rule) matches(path string) bool {
	if r.Match == Exact {
		return path == r.Pattern
	}
	return strings.HasPrefix(path, r.Pattern)
}

// Table is the static route configuration: the rules plus the paths the
// guard redirects to.
type Table struct {
	Rules []Rule

	Login     string
	Home      string
	AdminHome string
}

func DefaultTable() *Table {
	return &Table{
		Rules: []Rule{
			{Pattern: "/dashboard", Match: Prefix, Classification: Protected},
			{Pattern: "/dashboard/admin", Match: Prefix, Classification: ProtectedAdmin},
			{Pattern: "/login", Match: Exact, Classification: AuthEntry},
			{Pattern: "/daftar", Match: Exact, Classification: AuthEntry},
		},
		Login:     "/login",
		Home:      "/dashboard/events",
		AdminHome: "/dashboard/admin/reports",
	}
}

// Classify returns the classification of the most specific matching
// rule. An exact match beats any prefix, a longer prefix beats a shorter
// one. Unmatched paths are Public.
func (t *Table) Classify(path string) Classification {
	var (
		best  *Rule
		found bool
	)

	for i := range t.Rules {
		r := &t.Rules[i]
		if !r.matches(path) {
			continue
		}
		if !found || moreSpecific(r, best) {
			best = r
			found = true
		}
	}

	if !found {
		return Public
	}
	return best.Classification
}

func moreSpecific(a, b *Rule) bool {
	if a.Match != b.Match {
		return a.Match == Exact
	}
	return len(a.Pattern) > len(b.Pattern)
}
