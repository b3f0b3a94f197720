// Package model holds the in-memory session state of the recruiting
// application: the address book, the interview schedule, and the filtered
// views of both that the API layer presents.
//
// ModelManager is the single owner of that state. Every mutation passes
// through it, and the filtered views are recomputed inside the same critical
// section, so readers never observe a view that disagrees with the data.
package model
