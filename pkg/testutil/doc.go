// Package testutil provides utilities for testing branchswitch components.
//
// Key components:
//   - File helpers: create and read fixtures on the real filesystem
//   - MemFS helpers: seed an afero in-memory filesystem
//   - FakeRunner: a scripted runner.Runner that records every command and
//     can mutate the filesystem to simulate a branch switch
//   - RecordingNotifier: captures progress messages
//
// Usage guidelines:
//   - Prefer the in-memory filesystem for pipeline tests
//   - Only fingerprint and runner tests need the real filesystem or real processes
//   - Each test should be completely isolated with no shared state
package testutil
