// Package main provides the modulegen CLI, which generates NestJS JSON:API
// modules over Neo4j from a JSON or YAML schema.
//
// The CLI supports:
//   - generate: Render, write and register the module files of a schema
//   - validate: Check a schema without generating anything
//   - modules: List the modules of the source tree and their structure
//   - config show: Print the effective configuration
//
// Usage:
//
//	modulegen [flags] <command>
package main

func main() {
	Execute()
}
