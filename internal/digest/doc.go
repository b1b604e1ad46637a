// Package digest orchestrates one marquee run: load the archive snapshot,
// fetch every configured director, filter, deliver the digest, and commit
// the announced ids.
//
// The ordering of the last two steps is deliberate: the archive is only
// committed after delivery succeeded, so a failed send leaves every release
// eligible for the next run.
package digest
