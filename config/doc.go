// Package config holds the parameter surface shared by the CLI, the
// optional config file, and the DD engine/oracle/driver collaborators:
// Params, a static table of named keywords mirroring the original
// program's configuration file, a config-file reader, a command-line
// parser for its single-dash option grammar, and the postprocessing step
// that reconciles CLI overrides with file-provided and default values.
package config
