// Package observability provides interpreter observers for diagnostics:
// Prometheus counters and a structured transition logger. Observers are
// read-only; they never alter a transition outcome.
package observability
