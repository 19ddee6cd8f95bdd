package gtfs

import "fmt"

// DecodeError reports a malformed, truncated or otherwise undecodable feed
// payload. Decoding is all-or-nothing; no partial results accompany it.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode gtfs-realtime feed: %s", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// SchemaLoadError reports that the feed message definition could not be
// resolved from the protobuf registry. A failed resolution is retried on the
// next decode call rather than being cached.
type SchemaLoadError struct {
	MessageName string
	Err         error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("load feed schema %s: %s", e.MessageName, e.Err)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Err
}
