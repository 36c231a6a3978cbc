// Package plan executes ordered batches of repository relocations declared in
// a YAML file, reusing the relocate service for each step.
package plan
