package menu

import "sort"

// Set is an unordered collection of menu keys with unique membership.
type Set map[Key]struct{}

func NewSet(keys ...Key) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// FullSet returns a set containing every catalog key.
func FullSet() Set {
	s := make(Set, len(catalog))
	for _, e := range catalog {
		s[e.Key] = struct{}{}
	}
	return s
}

func (s Set) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

func (s Set) Add(k Key)    { s[k] = struct{}{} }
func (s Set) Remove(k Key) { delete(s, k) }

func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if !other.Has(k) {
			return false
		}
	}
	return true
}

// Diff returns the keys to insert (in other, not in s) and the keys to
// delete (in s, not in other), each sorted for deterministic statements.
func (s Set) Diff(target Set) (toAdd, toRemove []Key) {
	for k := range target {
		if !s.Has(k) {
			toAdd = append(toAdd, k)
		}
	}
	for k := range s {
		if !target.Has(k) {
			toRemove = append(toRemove, k)
		}
	}
	sortKeys(toAdd)
	sortKeys(toRemove)
	return toAdd, toRemove
}

// Sorted returns the members in lexical order, mainly for logging and JSON.
func (s Set) Sorted() []Key {
	out := make([]Key, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sortKeys(out)
	return out
}

func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
}
