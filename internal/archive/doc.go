// Package archive persists the set of movies that have already been
// announced, backed by SQLite.
//
// The Store owns the schema and the commit semantics: ids are only ever
// inserted, never removed, so the archive grows monotonically across runs.
// The in-memory Set loaded at run start is the state the filter pipeline
// evaluates against; the commit at run end happens in one transaction and
// only after the digest was actually delivered.
//
// Schema changes bump the version in schema.go; users clear the database to
// adopt the new schema.
package archive
