// Package app wires application dependencies for the CLI.
//
// It loads Config from flags, environment (TEXTCRYPT_*), an optional .env
// and an optional YAML file, builds the slog logger, and exposes the
// services via the Wire struct for commands to use.
package app
