// Package domain defines the algorithm selectors and the error taxonomy
// shared across the app. It contains plain types only.
package domain
