package archive

// Set is the in-memory form of the archive: the TMDB ids already announced.
type Set map[int64]struct{}

// NewSet builds a Set from ids.
func NewSet(ids ...int64) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id has been announced.
func (s Set) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}

// Add records id as announced.
func (s Set) Add(id int64) {
	s[id] = struct{}{}
}

// Len returns the number of announced ids.
func (s Set) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	clone := make(Set, len(s))
	for id := range s {
		clone[id] = struct{}{}
	}
	return clone
}
