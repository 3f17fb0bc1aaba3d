//go:build asn1_debug

package asn1safe

import (
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

/*
EnvDebugVar defines the environment variable name which can
be leveraged to invoke use of the [DefaultTracer] at startup.

The value is a comma-separated list of event names ("enter",
"info", "exit", "handle", "failure", "all") or integer masks.
*/
const EnvDebugVar = "ASN1SAFE_DEBUG"

/*
DefaultTracer is the package-level [Tracer] implementation.
*/
type DefaultTracer struct {
	mu sync.Mutex
	w  io.Writer
	ll loglevels
}

/*
NewDefaultTracer returns an instance of *[DefaultTracer] writing to
writer with every [EventType] enabled.
*/
func NewDefaultTracer(writer io.Writer) *DefaultTracer {
	return &DefaultTracer{w: writer, ll: newLoglevels().Shift(EventAll)}
}

/*
EnableLevel adds [EventType] ev to the enabled set.
*/
func (r *DefaultTracer) EnableLevel(ev EventType) {
	r.mu.Lock()
	r.ll.Shift(ev)
	r.mu.Unlock()
}

/*
DisableLevel removes [EventType] ev from the enabled set.
*/
func (r *DefaultTracer) DisableLevel(ev EventType) {
	r.mu.Lock()
	r.ll.Unshift(ev)
	r.mu.Unlock()
}

/*
Enabled returns a Boolean value indicative of ev being enabled within
the receiver instance.
*/
func (r *DefaultTracer) Enabled(ev EventType) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ll.Positive(ev)
}

/*
Trace writes [TraceRecord] rec to the [io.Writer] handled by the
receiver instance.
*/
func (r *DefaultTracer) Trace(rec TraceRecord) {
	if !r.Enabled(rec.Type) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var arrow string
	switch rec.Type {
	case EventEnter:
		arrow = " → "
	case EventExit:
		arrow = " ← "
	case EventFailure:
		arrow = " ✗ "
	default:
		arrow = "     • "
	}

	line := rec.Time.Format("15:04:05.000") + arrow + rec.Func
	if len(rec.Args) > 0 {
		line += ": " + fmtArgs(rec.Args)
	}
	io.WriteString(r.w, line+"\n")
}

/*
TraceRecord encapsulates metadata pertaining to a particular event
observed by a [Tracer].
*/
type TraceRecord struct {
	Time time.Time
	Type EventType
	Func string
	Args []any
}

/*
Tracer implements an interface tracer type, which is implemented
by [DefaultTracer].
*/
type Tracer interface {
	Trace(TraceRecord)
}

type levelTracer interface {
	Tracer
	Enabled(EventType) bool
}

/*
EnableDebug registers and activates [Tracer] for debugging.
*/
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug disables [Tracer] debugging.
*/
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = discardTracer{}
}

var (
	tmu    sync.RWMutex
	tracer Tracer = discardTracer{}
)

type discardTracer struct{}

func (discardTracer) Trace(_ TraceRecord)      {}
func (discardTracer) Enabled(_ EventType) bool { return false }

func debugEvent(level EventType, args ...any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()

	if lt, ok := t.(levelTracer); ok && !lt.Enabled(level) {
		return
	}

	fn := "unknown"
	if pc, _, _, ok := runtime.Caller(2); ok {
		fn = runtime.FuncForPC(pc).Name()
		if i := strings.LastIndex(fn, "/"); i >= 0 {
			fn = fn[i+1:]
		}
	}

	t.Trace(TraceRecord{
		Time: time.Now(),
		Type: level,
		Func: fn,
		Args: args,
	})
}

func debugEnter(args ...any) { debugEvent(EventEnter, args...) }
func debugExit(args ...any)  { debugEvent(EventExit, args...) }
func debugInfo(args ...any)  { debugEvent(EventInfo, args...) }

func debugHandle(op, kind string, h Handle) {
	debugEvent(EventHandle, op, kind, h)
}

func debugFailure(op string, err error) {
	debugEvent(EventFailure, op, err)
}

func fmtArgs(args []any) string {
	s := make([]string, len(args))
	for i, a := range args {
		switch tv := a.(type) {
		case string:
			s[i] = tv
		case int:
			s[i] = strconv.Itoa(tv)
		case Handle:
			s[i] = "0x" + strconv.FormatUint(uint64(tv), 16)
		case error:
			s[i] = tv.Error()
		case bool:
			s[i] = strconv.FormatBool(tv)
		default:
			s[i] = "<unsupported>"
		}
	}
	return strings.Join(s, ", ")
}

func parseEventMask(evar string) loglevels {
	ll := newLoglevels()
	for _, part := range strings.Split(evar, ",") {
		ll.Shift(part)
	}
	return ll
}

func init() {
	if evar := os.Getenv(EnvDebugVar); evar != "" {
		dt := NewDefaultTracer(os.Stderr)
		dt.ll = parseEventMask(evar)
		EnableDebug(dt)
		debugInfo("tracer enabled", strings.Join(dt.ll.enabled(), "|"))
	}
}
