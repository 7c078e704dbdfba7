package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// flexNumber accepts a JSON number or a numeric string. null, "" and "NaN"
// decode to zero, which the services treat as a missing value. Infinities
// are rejected.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*n = 0
			return nil
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", raw)
	}
	if math.IsInf(f, 0) {
		return fmt.Errorf("not a finite number: %q", raw)
	}
	if math.IsNaN(f) {
		f = 0
	}
	*n = flexNumber(f)
	return nil
}

// flexTimestamp accepts a date string or a JSON number of Unix
// milliseconds. Numbers are normalized to an RFC 3339 UTC string; null
// decodes to "".
type flexTimestamp string

func (ts *flexTimestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*ts = ""
		return nil
	}

	if bytes.HasPrefix(data, []byte(`"`)) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*ts = flexTimestamp(raw)
		return nil
	}

	ms, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("not a timestamp: %s", data)
	}
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxUnixMilli {
		return fmt.Errorf("timestamp out of range: %s", data)
	}
	*ts = flexTimestamp(time.UnixMilli(int64(ms)).UTC().Format(time.RFC3339Nano))
	return nil
}

// maxUnixMilli is the largest millisecond offset a JS Date can hold.
const maxUnixMilli = 8.64e15
