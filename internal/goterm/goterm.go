// Package goterm extracts Gene Ontology identifiers from free-form text and
// provides the small set algebra the agreement statistics are built on.
//
// Matching is purely syntactic: a token is a GO identifier iff it is exactly
// "GO:" followed by seven digits. Nothing is checked against the ontology.
package goterm

import (
	"sort"
	"strings"
)

const (
	prefix   = "GO:"
	idLength = len(prefix) + 7
)

// IsID reports whether tok is a full GO identifier.
func IsID(tok string) bool {
	if len(tok) != idLength || !strings.HasPrefix(tok, prefix) {
		return false
	}
	for i := len(prefix); i < idLength; i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

func isSep(r rune) bool {
	switch r {
	case ',', ';', ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Extract returns the distinct GO identifiers found in any of fields.
// Each field is split on commas, semicolons and whitespace; only tokens that
// are a full identifier are kept, so "xGO:0000001" or "GO:00000012" never match.
func Extract(fields ...string) Set {
	s := make(Set)
	for _, f := range fields {
		if !strings.Contains(f, prefix) {
			continue
		}
		for _, tok := range strings.FieldsFunc(f, isSep) {
			if IsID(tok) {
				s.Add(tok)
			}
		}
	}
	return s
}

// Set is a set of GO identifiers. The zero value (nil) is a valid empty set
// for every read-only method.
type Set map[string]struct{}

// NewSet builds a set from ids without validating them.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s Set) Add(id string) { s[id] = struct{}{} }

func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s Set) Len() int { return len(s) }

// Sorted returns the members in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Merge adds every member of o to s.
func (s Set) Merge(o Set) {
	for id := range o {
		s.Add(id)
	}
}

// IntersectLen returns |s ∩ o|.
func (s Set) IntersectLen(o Set) int {
	a, b := s, o
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for id := range a {
		if b.Has(id) {
			n++
		}
	}
	return n
}

// UnionLen returns |s ∪ o|.
func (s Set) UnionLen(o Set) int { return len(s) + len(o) - s.IntersectLen(o) }

// DiffLen returns |s − o|.
func (s Set) DiffLen(o Set) int { return len(s) - s.IntersectLen(o) }
