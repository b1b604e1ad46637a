// Package notify delivers the release digest.
//
// The Service fans out to every configured channel: an SMTP email (the
// primary transport) and optionally an ntfy push topic. When nothing is
// configured the digest prints to the console instead, so a release is
// never archived without having been shown somewhere.
//
// Total delivery failure is fatal for the run's archive commit: a release is
// only remembered once it has actually been announced, so callers must not
// commit when Send wraps ErrDeliveryFailed. A partial fan-out failure wraps
// ErrPartialDelivery; the digest did go out, so the run commits.
package notify
