// Package testutils provides fixtures and helpers shared by the test suites.
//
// # Test Domain Entities
//
// Candidates are built with functional options over sensible defaults:
//
//	c := testutils.MustCreateCandidateForTest(t,
//	    testutils.WithCandidateName("Alice Pauline"),
//	    testutils.WithCandidateTags("friends"),
//	)
//
//	iv := testutils.MustCreateInterviewForTest(t, c, start)
//
// # Typical Data
//
// Alice through George make up TypicalAddressBook; Amy and Bob are kept
// outside it for add and edit tests. TypicalInterviewSchedule books Alice,
// Benson and Amy. Each call returns fresh aggregates, so tests may mutate
// them freely.
package testutils
