// Package types defines the data model shared by branchswitch's components:
// the Command value used for every external program, the ManifestDefinition
// pairing a dependency manifest with its install command, content digests,
// and the per-manifest outcomes collected into a Report.
//
// All values in this package are plain data. Constructors copy their slice
// arguments so definitions stay immutable once built.
package types
