// Package config assembles the resolved configuration of a protect run.
//
// Configuration is collected from three layers and merged with per-field
// precedence (a layer fills only what earlier layers left unset):
//  1. Command-line flags
//  2. Optional JSON config file (path from the -c / --config flag)
//  3. Built-in defaults
//
// Every optional field of a layer is a pointer so that an explicit false or
// zero is never confused with absence. The main entry point is [Resolve],
// which merges the layers and returns an immutable [Config].
package config
