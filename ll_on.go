//go:build asn1_debug

package asn1safe

import (
	"strconv"
	"strings"
)

/*
loglevels is the [EventType] bitmask consulted by [DefaultTracer]. Its
values share one underlying mask.
*/
type loglevels struct {
	v *EventType
	m map[string]EventType
}

var eventNames = map[string]EventType{
	"none":    EventNone,
	"all":     EventAll,
	"enter":   EventEnter,
	"info":    EventInfo,
	"exit":    EventExit,
	"handle":  EventHandle,
	"failure": EventFailure,
}

// eventOrder lists the single-bit events in mask order.
var eventOrder = []string{"enter", "info", "exit", "handle", "failure"}

func newLoglevels() loglevels {
	return loglevels{v: new(EventType), m: eventNames}
}

func (r loglevels) Int() int {
	if r.v == nil {
		return 0
	}
	return int(*r.v)
}

func (r loglevels) Shift(x ...any) loglevels {
	for _, xi := range x {
		if X, ok := r.verifyShiftValue(xi); ok && r.v != nil {
			*r.v |= X
		}
	}
	return r
}

func (r loglevels) Unshift(x ...any) loglevels {
	for _, xi := range x {
		if X, ok := r.verifyShiftValue(xi); ok && r.v != nil {
			*r.v &^= X
		}
	}
	return r
}

func (r loglevels) Positive(x any) bool {
	X, ok := r.verifyShiftValue(x)
	return ok && r.v != nil && *r.v&X != 0
}

func (r loglevels) enabled() (names []string) {
	switch r.Int() {
	case int(EventNone):
		return []string{"none"}
	case int(EventAll):
		return []string{"all"}
	}
	for _, name := range eventOrder {
		if r.Positive(r.m[name]) {
			names = append(names, name)
		}
	}
	return
}

/*
verifyShiftValue accepts an [EventType], an int or a string holding an
event name or an integer. Out-of-range integers select every event.
*/
func (r loglevels) verifyShiftValue(x any) (EventType, bool) {
	switch tv := x.(type) {
	case EventType:
		return clampEvent(int(tv)), true
	case int:
		return clampEvent(tv), true
	case string:
		tv = strings.ToLower(strings.TrimSpace(tv))
		if n, err := strconv.Atoi(tv); err == nil {
			return clampEvent(n), true
		}
		ev, ok := r.m[tv]
		return ev, ok
	}
	return EventNone, false
}

func clampEvent(n int) EventType {
	if n < 0 || n > int(EventAll) {
		return EventAll
	}
	return EventType(n)
}
