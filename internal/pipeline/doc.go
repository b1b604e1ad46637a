// Package pipeline implements the discovery-dedup-filter core of marquee.
//
// Process is a pure function: given the fetched filmographies, the archive
// snapshot from run start, and the filter rules, it deterministically
// produces the ordered releases worth announcing and the updated archive
// set. Nothing in here performs I/O, so every invariant the rest of the
// system leans on (idempotence, monotonic archive growth, the graduation
// asymmetry) is enforced and tested in this package alone.
//
// The key asymmetry: credits rejected by a quality filter are NOT added to
// the archive. A project listed today as "Untitled X Film" with no IMDb id
// stays eligible, and graduates into a digest on a later run once its
// metadata improves.
package pipeline
