package asn1safe

/*
evt.go contains EventType constants which are (only) used
for debugging when this package was built or run with the
"-tags asn1_debug" flag.
*/

/*
EventType describes a specific kind of tracer event.

Note that this type and all of its constants are only meaningful
if/when this package was run or built with the "-tags asn1_debug"
flag. Otherwise, they can be ignored entirely.
*/
type EventType int

const (
	EventNone EventType = 0     // NO events
	EventAll  EventType = 65535 // ALL events
)

const (
	EventEnter   EventType = 1 << iota // 1: Called-function begin
	EventInfo                          // 2: Interim function event
	EventExit                          // 4: Called function exit
	EventHandle                        // 8: Handle wrap/free/take
	EventFailure                       // 16: Engine failure surfaced as an error
)
