package deviceinfo

import "unsafe"

// nativeSource is the raw deviceinfo facility selected at build time.
type nativeSource interface {
	// text returns the C string pointer of a string query, possibly nil.
	text(q Query) unsafe.Pointer
	// number returns the raw value of a numeric query.
	number(q Query) int32
}

// Provider is implemented by anything able to answer catalog queries with
// validated values.
type Provider interface {
	// Text returns the value of a string query. The second result is false
	// when the value is absent, empty or not valid UTF-8, and for numeric
	// queries.
	Text(q Query) (string, bool)
	// Number returns the value of a numeric query, 0 for negative native values
	// and for string queries.
	Number(q Query) uint32
}
