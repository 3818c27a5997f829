// Package csvconv converts CSV records into JSON or YAML documents.
//
// With a header row every record becomes an object keyed by column name.
// Without one, records are emitted as arrays of strings.
package csvconv
