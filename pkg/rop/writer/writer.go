// Package writer provides Writer, an immutable append-only log split into
// named channels. Every operation returns a new Writer; the receiver and the
// arguments are never modified.
package writer

import (
	"log/slog"
	"maps"
	"reflect"
	"slices"

	"github.com/ib-77/rail/pkg/rop/trace"
)

// DefaultChannel is the channel used by Log.
const DefaultChannel = "log"

type Writer struct {
	channels map[string][]any
	order    []string
}

func Empty() Writer {
	return Writer{}
}

// Write appends value to channel.
func (w Writer) Write(channel string, value any) Writer {
	next := w.clone(1)
	if _, ok := next.channels[channel]; !ok {
		next.order = append(next.order, channel)
	}
	next.channels[channel] = append(slices.Clip(next.channels[channel]), value)
	return next
}

// Log appends value to DefaultChannel.
func (w Writer) Log(value any) Writer {
	return w.Write(DefaultChannel, value)
}

// WithTrace appends t to the trace channel.
func (w Writer) WithTrace(t trace.Trace) Writer {
	return w.Write(trace.Channel, t)
}

// Get returns a copy of the values written to channel, in append order.
// A channel that was never written yields an empty slice.
func (w Writer) Get(channel string) []any {
	values := w.channels[channel]
	out := make([]any, len(values))
	copy(out, values)
	return out
}

// Merge concatenates other's values after w's values, channel by channel.
func (w Writer) Merge(other Writer) Writer {
	if len(other.channels) == 0 {
		return w
	}
	if len(w.channels) == 0 {
		return other
	}
	next := w.clone(len(other.order))
	for _, ch := range other.order {
		if _, ok := next.channels[ch]; !ok {
			next.order = append(next.order, ch)
		}
		next.channels[ch] = append(slices.Clip(next.channels[ch]), other.channels[ch]...)
	}
	return next
}

// Since returns what was appended to w after prefix, channel by channel.
// prefix must be an earlier state of w, i.e. w was derived from it through
// Write and Merge.
func (w Writer) Since(prefix Writer) Writer {
	next := Empty()
	for _, ch := range w.order {
		values := w.channels[ch]
		n := len(prefix.channels[ch])
		if len(values) <= n {
			continue
		}
		if next.channels == nil {
			next.channels = make(map[string][]any)
		}
		next.order = append(next.order, ch)
		next.channels[ch] = slices.Clip(values[n:])
	}
	return next
}

// Channels returns channel names in creation order.
func (w Writer) Channels() []string {
	return slices.Clone(w.order)
}

// All returns a snapshot of every channel.
func (w Writer) All() map[string][]any {
	out := make(map[string][]any, len(w.channels))
	for ch, values := range w.channels {
		out[ch] = slices.Clone(values)
	}
	return out
}

// Len returns the total number of values across all channels.
func (w Writer) Len() int {
	n := 0
	for _, values := range w.channels {
		n += len(values)
	}
	return n
}

func (w Writer) IsEmpty() bool {
	return len(w.channels) == 0
}

// Equal reports whether both writers hold the same values per channel.
func (w Writer) Equal(other Writer) bool {
	if len(w.channels) != len(other.channels) {
		return false
	}
	for ch, values := range w.channels {
		ov, ok := other.channels[ch]
		if !ok || !reflect.DeepEqual(values, ov) {
			return false
		}
	}
	return true
}

func (w Writer) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(w.order))
	for _, ch := range w.order {
		attrs = append(attrs, slog.Any(ch, w.channels[ch]))
	}
	return slog.GroupValue(attrs...)
}

// clone copies the channel map; value slices are shared and must only be
// extended through slices.Clip so the source never observes an append.
func (w Writer) clone(extra int) Writer {
	next := Writer{
		channels: make(map[string][]any, len(w.channels)+extra),
		order:    make([]string, len(w.order), len(w.order)+extra),
	}
	maps.Copy(next.channels, w.channels)
	copy(next.order, w.order)
	return next
}
