// Package passwords is the façade presentation code talks to.
//
// It turns record store results into discrete outcomes, logs the detail of
// every failure, and pushes the full ordered record list to a single observer
// after each load and each successful mutation.
package passwords
