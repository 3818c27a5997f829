// Package commands defines the textcrypt CLI and wires dependencies for subcommands.
//
// Commands
//
//   - text sign       Sign a message with a private or shared key
//   - text verify     Verify a signed message
//   - text generate   Generate a new key (blake3) or key pair (ed25519)
//   - text encrypt    Encrypt with ChaCha20-Poly1305, print base64
//   - text decrypt    Decrypt base64 ChaCha20-Poly1305 ciphertext
//   - base64 encode   Encode an input to base64
//   - base64 decode   Decode a base64 input
//   - genpass         Generate a random password
//
// # Implementation
//
// The root command loads configuration (flags, TEXTCRYPT_* environment, an
// optional .env and YAML file) and builds a dependency graph before any
// subcommand runs. Results go to stdout, logs and password strength to
// stderr.
package commands
