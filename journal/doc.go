// Package journal records every operation applied to a collection to a
// binary log, so a failing soak run can be replayed deterministically
// against a fresh collection for forensic debugging.
//
// A Writer appends OperationRecord entries to an io.Writer, rotating
// into a new in-memory segment according to a rotation.Strategy and
// flushing each closed segment to the underlying stream sorted by
// sequence number. A Reader iterates the records of one stream in the
// order they were flushed. MergeJournals merges several streams back
// into a single sequence-ordered iterator using the loser tree from the
// loser package, mirroring how a multi-segment write-ahead log is read
// back.
package journal
