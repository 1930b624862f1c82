package types

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// ShopkeeperID identifies a pending shopkeeper registration.
type ShopkeeperID string

// String returns the string form of the identifier.
func (id ShopkeeperID) String() string { return string(id) }

// Timestamp is a point in time as sent by the backend. It accepts RFC 3339
// values, zone-less date-times (read as UTC), bare calendar dates and epoch
// milliseconds. Any other value is kept verbatim in Raw so one odd record
// never fails the decode of a whole list.
type Timestamp struct {
	time.Time
	Raw string // set only when the value could not be parsed
}

const dateLayout = "2006-01-02"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	dateLayout,
}

// UnmarshalJSON implements json.Unmarshaler. It never fails on a well-formed
// JSON value.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	*t = Timestamp{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var ms json.Number
	if err := json.Unmarshal(data, &ms); err == nil && data[0] != '"' {
		if n, err := ms.Int64(); err == nil {
			t.Time = time.UnixMilli(n).UTC()
			return nil
		}
		if f, err := ms.Float64(); err == nil {
			t.Time = time.UnixMilli(int64(f)).UTC()
			return nil
		}
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		t.Raw = string(data)
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	t.Raw = s
	return nil
}

// MarshalJSON implements json.Marshaler. Unparsed values are written back as
// they were received.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		if t.Raw != "" {
			return json.Marshal(t.Raw)
		}
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

// Date formats the timestamp as a calendar date. An unparsed value is shown
// as received; an unset one as "-".
func (t Timestamp) Date() string {
	if t.IsZero() {
		if t.Raw != "" {
			return t.Raw
		}
		return "-"
	}
	return t.Local().Format(dateLayout)
}
