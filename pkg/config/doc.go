// Package config handles configuration management for branchswitch.
//
// Configuration is layered with koanf, later layers winning:
//
//  1. the embedded defaults (embedded/defaults.toml), which hold the
//     built-in manifest registry and the `git switch` command
//  2. a project file, either the path given with --config or
//     .branchswitch.toml in the working directory
//  3. BRANCHSWITCH_* environment variables, e.g. BRANCHSWITCH_SWITCH_PROGRAM
//     or BRANCHSWITCH_SWITCH_ARGS="checkout" (comma separated)
//  4. LoadOptions.Overrides, where command-line flags land
//
// A project file that declares [[manifests]] replaces the built-in list
// rather than extending it.
package config
