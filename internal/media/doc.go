// Package media defines the domain types shared across marquee: configured
// directors, the raw filmography credits returned by the catalog, and the
// releases that survive filtering and end up in a digest.
//
// Credits are untrusted catalog output and may be duplicated, incomplete, or
// placeholders; Release values are only ever produced by the filter pipeline
// and carry the guarantees the notifier relies on (resolved title, IMDb id).
package media
