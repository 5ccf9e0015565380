// Package config provides configuration loading, merging, and validation
// facilities for the ingestor.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path resolved from sources 1 and 2)
//
// The main entry point is [GetIngestorConfig], which merges all sources into
// a [StructuredConfig], maps it to the run-ready [IngestorConfig] view, and
// validates it before any network call is made.
package config
