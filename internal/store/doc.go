// Package store holds the in-memory aggregates that own the application's
// data: the candidate AddressBook and the InterviewSchedule, both built on
// the generic UniqueList.
//
// Aggregates enforce their uniqueness and conflict invariants on every
// mutation and report violations as sentinel errors (see errors.go). They do
// no I/O, never log, and are not safe for concurrent use; the session owner
// in package model serialises access.
package store
