package stategraph

import (
	"slices"
	"strconv"
	"strings"
)

// StateID addresses a state inside one Graph.
type StateID int

// Set is a sorted, duplicate-free collection of state ids. The zero value is
// the empty set. Sets are values: operations return new sets and never modify
// their receiver.
type Set []StateID

// NewSet builds a canonical set from ids in any order.
func NewSet(ids ...StateID) Set {
	if len(ids) == 0 {
		return nil
	}
	s := slices.Clone(ids)
	slices.Sort(s)
	return slices.Compact(s)
}

// Len returns the number of members.
func (s Set) Len() int { return len(s) }

// Empty reports whether the set has no members.
func (s Set) Empty() bool { return len(s) == 0 }

// Contains reports whether id is a member.
func (s Set) Contains(id StateID) bool {
	_, found := slices.BinarySearch(s, id)
	return found
}

// Insert returns a set that also contains id.
func (s Set) Insert(id StateID) Set {
	i, found := slices.BinarySearch(s, id)
	if found {
		return s
	}
	out := make(Set, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, id)
	return append(out, s[i:]...)
}

// Union returns the members of s and o.
func (s Set) Union(o Set) Set {
	if len(o) == 0 {
		return s
	}
	if len(s) == 0 {
		return o
	}
	out := make(Set, 0, len(s)+len(o))
	i, j := 0, 0
	for i < len(s) && j < len(o) {
		switch {
		case s[i] < o[j]:
			out = append(out, s[i])
			i++
		case s[i] > o[j]:
			out = append(out, o[j])
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	out = append(out, s[i:]...)
	return append(out, o[j:]...)
}

// Equal reports whether both sets have the same members.
func (s Set) Equal(o Set) bool {
	return slices.Equal(s, o)
}

// Key is the canonical encoding of the set, usable as a map key.
func (s Set) Key() string {
	var sb strings.Builder
	for i, id := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(id)))
	}
	return sb.String()
}
