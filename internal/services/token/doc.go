// Package token signs and verifies HS256 JSON Web Tokens carrying a
// subject, an audience and an expiry.
package token
