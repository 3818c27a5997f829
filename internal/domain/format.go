package domain

import "fmt"

// Format selects the signing algorithm for text sign, verify and generate.
type Format uint8

const (
	// FormatBlake3 is the keyed-hash (MAC) signer.
	FormatBlake3 Format = iota + 1
	// FormatEd25519 is the asymmetric signer.
	FormatEd25519
)

// ParseFormat maps a format token to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "blake3":
		return FormatBlake3, nil
	case "ed25519":
		return FormatEd25519, nil
	}
	return 0, Errorf(ErrConfig, "unsupported sign format %q", s)
}

// String returns the format token.
func (f Format) String() string {
	switch f {
	case FormatBlake3:
		return "blake3"
	case FormatEd25519:
		return "ed25519"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Base64Format selects the alphabet and padding of the base64 subcommand.
type Base64Format uint8

const (
	// Base64Standard is the standard alphabet with padding.
	Base64Standard Base64Format = iota + 1
	// Base64URLSafe is the URL-safe alphabet without padding.
	Base64URLSafe
)

// ParseBase64Format maps a base64 format token to a Base64Format.
func ParseBase64Format(s string) (Base64Format, error) {
	switch s {
	case "standard":
		return Base64Standard, nil
	case "urlsafe":
		return Base64URLSafe, nil
	}
	return 0, Errorf(ErrConfig, "unsupported base64 format %q", s)
}

// String returns the flag token for f.
func (f Base64Format) String() string {
	switch f {
	case Base64Standard:
		return "standard"
	case Base64URLSafe:
		return "urlsafe"
	}
	return fmt.Sprintf("Base64Format(%d)", uint8(f))
}

// OutputFormat selects the document format the csv command writes.
type OutputFormat uint8

const (
	// OutputJSON is pretty-printed JSON.
	OutputJSON OutputFormat = iota + 1
	// OutputYAML is a YAML sequence.
	OutputYAML
)

// ParseOutputFormat maps an output format token to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "json":
		return OutputJSON, nil
	case "yaml":
		return OutputYAML, nil
	}
	return 0, Errorf(ErrConfig, "unsupported output format %q", s)
}

// String returns the token, which is also the default file extension.
func (f OutputFormat) String() string {
	switch f {
	case OutputJSON:
		return "json"
	case OutputYAML:
		return "yaml"
	}
	return fmt.Sprintf("OutputFormat(%d)", uint8(f))
}
