// Package commands defines the passkeeper CLI.
//
// Commands
//
//   - list    Print labels in insertion order
//   - get     Print the secret stored under a label
//   - add     Add a secret, optionally generated
//   - update  Replace the secret of an existing label
//   - remove  Delete a label
//
// # Implementation
//
// The root command validates the flags and builds the dependency graph before
// any subcommand runs. Every subcommand then unlocks and loads the store, and
// the mutating ones write it back before exiting.
package commands
