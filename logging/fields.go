package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/lixenwraith/gridcrawl/core"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Entity adds an entity id field.
func Entity(e core.Entity) Field {
	return func(ev *bolt.Event) *bolt.Event {
		return ev.Int64("entity", int64(e))
	}
}

// Group adds a turn group field.
func Group(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("group", name)
	}
}

// FromGroup adds a from_group field for rotations.
func FromGroup(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("from_group", name)
	}
}

// Attempt adds a decision attempt index field.
func Attempt(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("attempt", n)
	}
}

// Action adds an action kind field.
func Action(kind string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("action", kind)
	}
}

// Pending adds the number of queued actions.
func Pending(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("pending", n)
	}
}

// DurationUs adds a duration field in microseconds.
func DurationUs(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_us", d.Microseconds())
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Int adds an integer field with custom key.
func Int(key string, n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int(key, n)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}

// Int64 adds a 64-bit integer field with custom key.
func Int64(key string, n int64) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64(key, n)
	}
}
