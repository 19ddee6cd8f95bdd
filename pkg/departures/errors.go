package departures

import "fmt"

// UpstreamUnavailableError reports that one of the external APIs the
// aggregator depends on could not be reached or answered badly. Decode
// failures are not upstream errors; they surface as gtfs.DecodeError.
type UpstreamUnavailableError struct {
	Source string
	Err    error
}

func (e *UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("upstream %s unavailable: %s", e.Source, e.Err)
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return e.Err
}
