// Package domain contains the core business entities, value objects, and
// domain logic of the application: recruitment candidates, their tags and
// statuses, and interview bookings with their fixed-length time windows.
//
// Every entity here is an immutable value. Edits produce a new value, and
// each entity exposes two distinct comparisons: an identity check (is this
// the same real-world thing?) and full equality (are all fields identical?).
package domain
