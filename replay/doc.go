// Package replay reconstructs a collection's history from recorded
// journal segments, for forensic debugging of a failing concurrent
// soak run: once a bug is caught, its journal files can be replayed
// sequentially against a fresh collection to reproduce the exact
// sequence of operations that led to it.
//
// A Replayer polls a Storage for published segments, opens each with a
// journal.Reader, and feeds the resulting operation sequence to a
// Handler. Segments are deleted once handled, mirroring how a durable
// consumer clears processed work.
package replay
