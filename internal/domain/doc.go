// Package domain defines the records, collaborator contracts and error
// taxonomy shared by the password store, its façade and the CLI.
// It contains plain types and interfaces only.
package domain
