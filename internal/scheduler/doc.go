// Package scheduler runs committer's main loop.
//
// Each iteration walks a fixed sequence of states:
//
//	MUTATING -> STAGING -> COMMITTING -> PUBLISHING -> SLEEPING -> MUTATING
//
// The first failing step moves the loop to ABORTED: the failure is logged,
// the user is asked to acknowledge it and Run returns an *AbortError. Steps
// already completed in that iteration are not rolled back. A git binary that
// cannot be launched ends the run without the acknowledgment prompt.
//
// After a successful iteration the loop sleeps for the target interval minus
// the time the iteration took, never less than zero. The target is either
// commit_schedule minutes or, in random mode, a whole number of minutes drawn
// from [5, 61).
//
// Randomness and time are injected through random.Source and Clock so tests
// can script draws and control elapsed time.
package scheduler
