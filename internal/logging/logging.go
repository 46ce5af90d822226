// Package logging builds the JSON-lines logger shared by the process.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// TimestampField is the key carrying the entry time.
const TimestampField = "ts"

type tsHook struct {
	loc *time.Location
}

func (h tsHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str(TimestampField, time.Now().In(h.loc).Format(time.RFC3339Nano))
}

// New returns a logger writing one JSON object per line to w.
// Timestamps are rendered in loc; a nil loc means UTC.
func New(w io.Writer, loc *time.Location) zerolog.Logger {
	if loc == nil {
		loc = time.UTC
	}
	return zerolog.New(w).Hook(tsHook{loc: loc})
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
