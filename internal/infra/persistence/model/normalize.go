// Package model contains the persistence-layer document shapes and their
// conversions to and from domain entities. Documents written by older
// storefront clients are not uniform, so all timestamp decoding funnels
// through NormalizeTime here rather than at every consumption site.
package model

import (
	"time"
)

// NormalizeTime coerces the timestamp shapes found in live documents into a
// time.Time: native values, RFC3339 strings, epoch milliseconds, and the
// provider wrapper objects ({seconds,nanos} or {_seconds,_nanoseconds}).
// Anything unrecognized yields the zero time, which sorts first on the
// kitchen board instead of breaking the view.
func NormalizeTime(value any) time.Time {
	switch v := value.(type) {
	case time.Time:
		return v
	case *time.Time:
		if v == nil {
			return time.Time{}
		}

		return *v
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return ts
		}
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			return ts
		}

		return time.Time{}
	case int64:
		return fromEpochMillis(v)
	case float64:
		return fromEpochMillis(int64(v))
	case map[string]any:
		if sec, ok := wrapperField(v, "seconds", "_seconds"); ok {
			nanos, _ := wrapperField(v, "nanos", "_nanoseconds")

			return time.Unix(sec, nanos).UTC()
		}

		return time.Time{}
	default:
		return time.Time{}
	}
}

// fromEpochMillis interprets large numbers as milliseconds and everything
// else as seconds; the storefront has written both.
func fromEpochMillis(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	if n > 1e12 {
		return time.UnixMilli(n).UTC()
	}

	return time.Unix(n, 0).UTC()
}

func wrapperField(m map[string]any, keys ...string) (int64, bool) {
	for _, key := range keys {
		raw, ok := m[key]
		if !ok {
			continue
		}
		switch n := raw.(type) {
		case int64:
			return n, true
		case int:
			return int64(n), true
		case float64:
			return int64(n), true
		}
	}

	return 0, false
}
