package tracker

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp is an entry timestamp. On the wire it is an ISO-8601 string; in
// memory it is a parsed instant, so window filtering compares times rather
// than strings and survives mixed formats or timezones in old documents.
type Timestamp struct {
	time.Time
}

// Layouts accepted when decoding. RFC3339Nano covers everything this
// implementation writes; the zone-less forms cover documents written by the
// original tool, which recorded naive local timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// NewTimestamp wraps an instant for recording.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// MarshalJSON encodes the timestamp as an RFC3339 string with sub-second
// precision.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(time.RFC3339Nano) + `"`), nil
}

// UnmarshalJSON decodes an ISO-8601 string, trying each accepted layout.
// Zone-less timestamps are interpreted in local time, matching how they were
// recorded.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)

	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}

	return fmt.Errorf("parsing timestamp %q: %w", s, lastErr)
}
