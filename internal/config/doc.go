// Package config builds the run configuration from environment variables.
//
// Two values are required and have no defaults: the Airtable bearer token and
// the base/table path identifying which table to sync. Everything else
// (docket lookup URL, field names, request delay, data directory) defaults to
// the production setup and can be overridden per environment.
package config
