// Package catalog defines the movie-metadata source abstraction and the
// per-director fetch loop.
//
// A Source returns the raw filmography for one director. Fetch failures are
// carried as tagged results rather than raised, so the run can announce what
// it found even when some directors could not be fetched.
package catalog
