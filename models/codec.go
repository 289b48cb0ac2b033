package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// clientTimeLayout is the wire format for every timestamp exchanged with the
// mobile client: ISO-8601 / RFC3339 in UTC with millisecond precision, the
// exact shape the client's local store produces and consumes.
const clientTimeLayout = "2006-01-02T15:04:05.000Z"

// ClientTime is a time.Time that marshals to the client's ISO-8601 string
// encoding and unmarshals from either an ISO-8601 string or an integer number
// of epoch milliseconds (older client builds sent raw SQLite integers).
//
// The zero value marshals to "null" is NOT supported — optional timestamps
// must be modelled as *ClientTime so that absent values round-trip as JSON
// null.
type ClientTime struct {
	time.Time
}

// NewClientTime wraps t, normalised to UTC.
func NewClientTime(t time.Time) ClientTime {
	return ClientTime{t.UTC()}
}

// MarshalJSON encodes the timestamp as a quoted ISO-8601 string in UTC with
// millisecond precision.
func (t ClientTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.UTC().Format(clientTimeLayout))), nil
}

// UnmarshalJSON accepts an ISO-8601/RFC3339 string, an integer epoch-millisecond
// value, or JSON null (which leaves the zero value in place).
func (t *ClientTime) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*t = ClientTime{}
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("invalid timestamp %s: %w", raw, err)
		}

		parsed, err := parseClientTimeString(unquoted)
		if err != nil {
			return err
		}

		*t = ClientTime{parsed.UTC()}
		return nil
	}

	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: expected ISO-8601 string or epoch milliseconds", raw)
	}

	*t = ClientTime{time.UnixMilli(millis).UTC()}
	return nil
}

// parseClientTimeString tries the timestamp layouts observed in client
// payloads, most specific first.
func parseClientTimeString(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}

	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// ClientBool is a bool that travels as the client's 0/1 integer encoding.
// JSON true/false literals are accepted on input for forward compatibility,
// but output is always 0 or 1.
type ClientBool bool

// MarshalJSON encodes true as 1 and false as 0.
func (b ClientBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// UnmarshalJSON accepts 0/1 integers, true/false literals, and null.
// Mirroring the client's own `=== 1` check, any integer other than 1 decodes
// to false.
func (b *ClientBool) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch raw {
	case "1", "true":
		*b = true
		return nil
	case "false", "null":
		*b = false
		return nil
	}

	if _, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*b = false
		return nil
	}

	return fmt.Errorf("invalid boolean flag %s: expected 0/1", raw)
}
