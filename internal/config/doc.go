// Package config loads and merges the harness configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with first-source-wins semantics (environment, then
// flags, then the JSON file, then built-in defaults), after which the final
// configuration is validated. See GetStructuredConfig.
package config
