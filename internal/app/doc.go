// Package app wires application dependencies for the CLI.
//
// It builds the file provider, crypto provider, record store and password
// service from Config and exposes them through Wire. App adds the
// unlock/commit sequence every command follows.
package app
