package asn1safe

/*
err.go contains the error stack snapshot, the conversion failure type
and the helpers translating engine failure sentinels into errors.
*/

import "github.com/JesseCoretta/go-asn1safe/internal/native"

/*
ErrConversion is matched by every [ConversionError] through [errors.Is].
*/
var ErrConversion error = mkerr("native conversion failure")

/*
ErrorEntry is one record of an [ErrorStack].
*/
type ErrorEntry struct {
	Code     uint64
	Library  string
	Function string
	Reason   string
}

/*
Error returns the string representation of the receiver instance in the
form "error:<code>:<library>:<function>:<reason>".
*/
func (r ErrorEntry) Error() string {
	code := uc(fmtUint(r.Code, 16))
	if len(code) < 8 {
		code = rep("0", 8-len(code)) + code
	}
	return "error:" + code + ":" + r.Library + ":" + r.Function + ":" + r.Reason
}

/*
ErrorStack is a snapshot of the engine error queue taken immediately
after a failing call, oldest entry first.
*/
type ErrorStack []ErrorEntry

/*
Error returns all entries joined by commas, or a placeholder when the
stack is empty.
*/
func (r ErrorStack) Error() string {
	if len(r) == 0 {
		return "empty error stack"
	}
	s := make([]string, len(r))
	for i := range r {
		s[i] = r[i].Error()
	}
	return join(s, ", ")
}

/*
errorStackGet drains es. It must be called on the goroutine that made
the failing call, before any other engine call reuses es.
*/
func errorStackGet(es *native.ErrState) (stack ErrorStack) {
	for {
		e, ok := es.Get()
		if !ok {
			break
		}
		stack = append(stack, ErrorEntry{
			Code:     e.Code,
			Library:  e.LibString(),
			Function: e.Func,
			Reason:   e.ReasonString(),
		})
	}
	return
}

/*
ConversionError reports an engine call that returned a failure sentinel
(negative length, null handle or zero return code) together with the
error stack captured at that point.
*/
type ConversionError struct {
	Op    string
	Stack ErrorStack
}

func (r *ConversionError) Error() string {
	return `CONVERSION ERROR: ` + r.Op + `: ` + r.Stack.Error()
}

// Is reports whether target is [ErrConversion].
func (r *ConversionError) Is(target error) bool { return target == ErrConversion }

// Unwrap returns the captured [ErrorStack], or nil when it is empty.
func (r *ConversionError) Unwrap() error {
	if len(r.Stack) == 0 {
		return nil
	}
	return r.Stack
}

func conversionError(op string, es *native.ErrState) error {
	err := &ConversionError{Op: op, Stack: errorStackGet(es)}
	debugFailure(op, err)
	return err
}

// cvt maps a non-positive return code to a ConversionError.
func cvt(op string, es *native.ErrState, rc int) error {
	if rc <= 0 {
		return conversionError(op, es)
	}
	return nil
}

// cvtP maps a null handle to a ConversionError.
func cvtP(op string, es *native.ErrState, h Handle) (Handle, error) {
	if h == 0 {
		return 0, conversionError(op, es)
	}
	return h, nil
}

// cvtN maps a negative length to a ConversionError.
func cvtN(op string, es *native.ErrState, n int) (int, error) {
	if n < 0 {
		return n, conversionError(op, es)
	}
	return n, nil
}

/*
call runs fn against a freshly acquired engine error state, releasing
the state afterwards. Errors must be collected inside fn.
*/
func call[T any](fn func(es *native.ErrState) (T, error)) (T, error) {
	es := native.AcquireErrState()
	defer es.Release()
	return fn(es)
}

// call0 is [call] for operations producing only an error.
func call0(fn func(es *native.ErrState) error) error {
	es := native.AcquireErrState()
	defer es.Release()
	return fn(es)
}
