// Package pipeline implements the checksum-gated reinstall flow:
// fingerprint every tracked manifest → switch branch → re-fingerprint →
// run the install command of each manifest whose digest changed.
//
// The phases run strictly in sequence on the calling goroutine. Only the
// switch step can end a run early; every other failure is recorded against
// its manifest and the remaining manifests are still processed.
package pipeline
