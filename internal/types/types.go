// Package types: data types shared across packages
package types

// Row is one dataset record: field name to scalar (string, number,
// date-like string, time, decimal or nil). Rows carry no identity of
// their own beyond what the backend returns.
type Row = map[string]any
