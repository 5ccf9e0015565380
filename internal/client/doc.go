// Package client contains the run orchestrator of the ingestor.
//
// The orchestrator drives a single submission through a fixed sequence of
// states: load configuration, authenticate, resolve metadata, upload, report.
// Failures from the closed taxonomy in the service package are logged,
// journaled, and returned; anything outside the taxonomy escalates to the
// caller untouched.
package client
