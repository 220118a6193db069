// Package registry holds the ordered set of manifests branchswitch tracks.
//
// A Registry is built once per run from configuration and never mutated
// afterwards. Declaration order is significant: fingerprinting, reinstalls
// and the final report all follow it.
package registry
