// Package trace defines Trace, a timestamped message recorded into a
// Writer's trace channel.
package trace

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Channel is the writer channel traces are appended to.
const Channel = "trace"

type Trace struct {
	id      uuid.UUID
	message string
	at      time.Time
}

func New(message string) Trace {
	return Trace{
		id:      uuid.New(),
		message: message,
		at:      time.Now().UTC(),
	}
}

// Newf formats the message like fmt.Sprintf.
func Newf(format string, args ...any) Trace {
	return New(fmt.Sprintf(format, args...))
}

func (t Trace) ID() uuid.UUID {
	return t.id
}

func (t Trace) Message() string {
	return t.message
}

// At returns the creation time (UTC).
func (t Trace) At() time.Time {
	return t.at
}

func (t Trace) String() string {
	return t.at.Format(time.RFC3339Nano) + " " + t.message
}

func (t Trace) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", t.id.String()),
		slog.String("message", t.message),
		slog.Time("at", t.at),
	)
}

func (t Trace) MarshalYAML() (any, error) {
	return map[string]string{
		"id":      t.id.String(),
		"message": t.message,
		"at":      t.at.Format(time.RFC3339Nano),
	}, nil
}
