// Package services contains the application services of the Still Waters
// client: session lifecycle, conversation synchronization, and the
// devotional, scripture and prayer-wall features.
//
// Services are single-goroutine state machines driven by the CLI loop: every
// method runs to completion before the next user action is processed, so no
// internal locking is used. Network failures degrade reads to empty state
// and surface writes to the caller; optimistic UI changes are never rolled
// back except where noted.
package services
