// Package commands defines the repocheck CLI.
//
// Commands
//
//   - check     Validate an input document against a schema document
//   - fields    Print the declared field table of a schema document
//
// # Implementation
//
// The root command loads the YAML schema document before any subcommand runs,
// so handlers share one parsed *schema.Document and its derived field table.
package commands
