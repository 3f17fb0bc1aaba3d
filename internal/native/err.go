package native

/*
err.go contains the per-call error state queue and the library and
reason codes pushed onto it.
*/

import (
	"strconv"
	"sync"
)

// Library codes.
const (
	LibNone   = 1
	LibBIO    = 32
	LibOBJ    = 8
	LibX509   = 11
	LibASN1   = 13
	LibCRYPTO = 15
)

// Reason codes.
const (
	ReasonInvalidHandle           = 258
	ReasonInvalidArgument         = 262
	ReasonMallocFailure           = 256
	ReasonInvalidBMPStringLength  = 129
	ReasonInvalidTimeFormat       = 132
	ReasonInvalidUniversalLength  = 133
	ReasonInvalidUTF8String       = 134
	ReasonWrongType               = 169
	ReasonErrorGettingTime        = 173
	ReasonTooLarge                = 223
	ReasonUnknownNid              = 101
	ReasonUnknownObjectName       = 103
	ReasonInvalidObjectEncoding   = 216
	ReasonExpectingAnInteger      = 115
	ReasonWriteFailure            = 118
	ReasonIllegalNegativeBitIndex = 263
	ReasonIllegalCharacters       = 124
)

const reasonBits = 23

var libNames = map[int]string{
	LibNone:   "",
	LibBIO:    "BIO routines",
	LibOBJ:    "object identifier routines",
	LibX509:   "x509 certificate routines",
	LibASN1:   "asn1 encoding routines",
	LibCRYPTO: "common libcrypto routines",
}

var reasonNames = map[int]string{
	ReasonInvalidHandle:           "passed invalid handle",
	ReasonInvalidArgument:         "passed invalid argument",
	ReasonMallocFailure:           "malloc failure",
	ReasonInvalidBMPStringLength:  "invalid bmpstring length",
	ReasonInvalidTimeFormat:       "invalid time format",
	ReasonInvalidUniversalLength:  "invalid universalstring length",
	ReasonInvalidUTF8String:       "invalid utf8string",
	ReasonWrongType:               "wrong type",
	ReasonErrorGettingTime:        "error getting time",
	ReasonTooLarge:                "too large",
	ReasonUnknownNid:              "unknown nid",
	ReasonUnknownObjectName:       "unknown object name",
	ReasonInvalidObjectEncoding:   "invalid object encoding",
	ReasonExpectingAnInteger:      "expecting an integer",
	ReasonWriteFailure:            "write failure",
	ReasonIllegalNegativeBitIndex: "illegal negative bit index",
	ReasonIllegalCharacters:       "illegal characters",
}

/*
Entry is one queued failure record.
*/
type Entry struct {
	Code   uint64
	Lib    int
	Func   string
	Reason int
}

/*
PackCode combines a library and reason code into a single error code.
*/
func PackCode(lib, reason int) uint64 {
	return uint64(lib)<<reasonBits | uint64(reason)
}

// LibString returns the library description of r.
func (r Entry) LibString() string {
	if s, ok := libNames[r.Lib]; ok {
		return s
	}
	return "lib(" + strconv.Itoa(r.Lib) + ")"
}

// ReasonString returns the reason description of r.
func (r Entry) ReasonString() string {
	if s, ok := reasonNames[r.Reason]; ok {
		return s
	}
	return "reason(" + strconv.Itoa(r.Reason) + ")"
}

/*
ErrState is the error queue of one logical thread of execution. It is
not safe for concurrent use; acquire one per operation with
[AcquireErrState] and drain it on the same goroutine.
*/
type ErrState struct {
	q []Entry
}

var errStatePool = sync.Pool{New: func() any { return new(ErrState) }}

/*
AcquireErrState returns an empty *[ErrState].
*/
func AcquireErrState() *ErrState {
	return errStatePool.Get().(*ErrState)
}

/*
Release clears the receiver and returns it to the pool. The receiver
must not be used afterwards.
*/
func (r *ErrState) Release() {
	if r == nil {
		return
	}
	r.Clear()
	errStatePool.Put(r)
}

// Clear discards all queued entries.
func (r *ErrState) Clear() { r.q = r.q[:0] }

// Len returns the number of queued entries.
func (r *ErrState) Len() int {
	if r == nil {
		return 0
	}
	return len(r.q)
}

/*
Get removes and returns the oldest queued [Entry].
*/
func (r *ErrState) Get() (e Entry, ok bool) {
	if r == nil || len(r.q) == 0 {
		return
	}
	e, ok = r.q[0], true
	r.q = r.q[1:]
	if len(r.q) == 0 {
		r.q = nil
	}
	return
}

/*
Peek returns the oldest queued [Entry] without removing it.
*/
func (r *ErrState) Peek() (e Entry, ok bool) {
	if r == nil || len(r.q) == 0 {
		return
	}
	return r.q[0], true
}

// put queues a failure; a nil receiver drops it.
func (r *ErrState) put(lib int, fn string, reason int) {
	if r == nil {
		return
	}
	r.q = append(r.q, Entry{
		Code:   PackCode(lib, reason),
		Lib:    lib,
		Func:   fn,
		Reason: reason,
	})
}
