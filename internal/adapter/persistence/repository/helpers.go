package repository

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// errMissingDocumentID marks a persisted document without the mandatory
// identity attribute; such a document cannot be reconstituted.
var errMissingDocumentID = errors.New("document missing _id")

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Day-granularity dates are stored as local-time "2006-01-02" strings so
// lexicographic order matches chronological order in range filters;
// instants keep full precision in UTC.
const dayLayout = "2006-01-02"

func encodeDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format(dayLayout)
}

func decodeDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(dayLayout, s, time.Local)
	if err != nil {
		log.Warn().Str("value", s).Msg("unparseable date value, leaving unset")
		return time.Time{}
	}
	return t
}

func encodeInstant(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func decodeInstant(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		log.Warn().Str("value", s).Msg("unparseable instant value, leaving unset")
		return time.Time{}
	}
	return t
}

func todayLocal() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
