package asn1safe

/*
time.go contains the GeneralizedTime and Time owning/view pairs.
*/

import (
	"time"

	"github.com/JesseCoretta/go-asn1safe/internal/native"
)

/*
GeneralizedTimeRef is a borrowed view of a [GeneralizedTime]. It remains
usable only while the owner has not been closed.
*/
type GeneralizedTimeRef struct {
	cell *foreign
}

/*
GeneralizedTime owns one engine GeneralizedTime handle.
*/
type GeneralizedTime struct {
	GeneralizedTimeRef
}

func newGeneralizedTime(h Handle) *GeneralizedTime {
	return &GeneralizedTime{GeneralizedTimeRef{newForeign("GeneralizedTime", h, native.ASN1StringFree)}}
}

/*
NewGeneralizedTime returns a new *[GeneralizedTime] holding t in UTC,
truncated to microsecond precision.
*/
func NewGeneralizedTime(t time.Time) (*GeneralizedTime, error) {
	debugEnter(t.String())
	defer debugExit()

	return call(func(es *native.ErrState) (*GeneralizedTime, error) {
		h := native.ASN1StringTypeNew(native.VGeneralizedTime)
		rc := native.ASN1GeneralizedTimeSetString(es, h, native.FormatGeneralizedTime(t))
		if err := cvt("ASN1_GENERALIZEDTIME_set_string", es, rc); err != nil {
			native.ASN1StringFree(h)
			return nil, err
		}
		return newGeneralizedTime(h), nil
	})
}

/*
GeneralizedTimeFromHandle takes exclusive ownership of h.
*/
func GeneralizedTimeFromHandle(h Handle) *GeneralizedTime { return newGeneralizedTime(h) }

/*
Ref returns a view sharing the receiver's handle.
*/
func (r *GeneralizedTime) Ref() GeneralizedTimeRef {
	if r == nil {
		return GeneralizedTimeRef{}
	}
	return r.GeneralizedTimeRef
}

/*
Close frees the underlying handle. Only the first call has any effect.
*/
func (r *GeneralizedTime) Close() error {
	if r == nil {
		return nil
	}
	return r.cell.release()
}

/*
IntoHandle relinquishes ownership of the underlying handle without
freeing it. The caller becomes responsible for releasing it.
*/
func (r *GeneralizedTime) IntoHandle() Handle {
	if r == nil {
		return 0
	}
	return r.cell.take()
}

/*
Handle returns the underlying handle, or the null handle once the owner
has been closed.
*/
func (r GeneralizedTimeRef) Handle() Handle { return r.cell.ptr() }

/*
Text returns the printable form of the receiver, e.g.
"Oct 14 12:00:00 2026 GMT".
*/
func (r GeneralizedTimeRef) Text() (string, error) {
	return render("ASN1_GENERALIZEDTIME_print", r.Handle(), native.ASN1GeneralizedTimePrint)
}

/*
String returns the result of [GeneralizedTimeRef.Text], or the empty
string on failure.
*/
func (r GeneralizedTimeRef) String() string {
	s, _ := r.Text()
	return s
}

/*
Cast returns the receiver as a [time.Time] in UTC.
*/
func (r GeneralizedTimeRef) Cast() (time.Time, error) {
	return castTime(r.Handle())
}

/*
TimeRef is a borrowed view of a [Time]. It remains usable only while the
owner has not been closed.
*/
type TimeRef struct {
	cell *foreign
}

/*
Time owns one engine time handle, stored as UTCTime for the years 1950
through 2049 and as GeneralizedTime otherwise.
*/
type Time struct {
	TimeRef
}

func newTime(h Handle) *Time {
	return &Time{TimeRef{newForeign("Time", h, native.ASN1StringFree)}}
}

/*
DaysFromNow returns a new *[Time] set to the current time plus days.
*/
func DaysFromNow(days uint32) (*Time, error) {
	return TimeFromPeriod(int64(days) * 86400)
}

/*
TimeFromPeriod returns a new *[Time] set to the current time shifted by
seconds, which may be negative.
*/
func TimeFromPeriod(seconds int64) (*Time, error) {
	debugEnter("period", int(seconds))
	defer debugExit()

	return call(func(es *native.ErrState) (*Time, error) {
		h, err := cvtP("X509_gmtime_adj", es, native.X509GmtimeAdj(es, 0, seconds))
		if err != nil {
			return nil, err
		}
		return newTime(h), nil
	})
}

/*
TimeFromUnix returns a new *[Time] set to the UNIX time sec.
*/
func TimeFromUnix(sec int64) (*Time, error) {
	return call(func(es *native.ErrState) (*Time, error) {
		h, err := cvtP("ASN1_TIME_set", es, native.ASN1TimeSet(es, 0, sec))
		if err != nil {
			return nil, err
		}
		return newTime(h), nil
	})
}

/*
TimeFromHandle takes exclusive ownership of h.
*/
func TimeFromHandle(h Handle) *Time { return newTime(h) }

/*
Ref returns a view sharing the receiver's handle.
*/
func (r *Time) Ref() TimeRef {
	if r == nil {
		return TimeRef{}
	}
	return r.TimeRef
}

/*
Close frees the underlying handle. Only the first call has any effect.
*/
func (r *Time) Close() error {
	if r == nil {
		return nil
	}
	return r.cell.release()
}

/*
IntoHandle relinquishes ownership of the underlying handle without
freeing it.
*/
func (r *Time) IntoHandle() Handle {
	if r == nil {
		return 0
	}
	return r.cell.take()
}

/*
Handle returns the underlying handle, or the null handle once the owner
has been closed.
*/
func (r TimeRef) Handle() Handle { return r.cell.ptr() }

/*
Text returns the printable form of the receiver in the layout
"Jan _2 15:04:05 2006 GMT".
*/
func (r TimeRef) Text() (string, error) {
	return render("ASN1_TIME_print", r.Handle(), native.ASN1TimePrint)
}

/*
String returns the result of [TimeRef.Text], or the empty string on
failure.
*/
func (r TimeRef) String() string {
	s, _ := r.Text()
	return s
}

/*
Cast returns the receiver as a [time.Time] in UTC.
*/
func (r TimeRef) Cast() (time.Time, error) {
	return castTime(r.Handle())
}

func castTime(h Handle) (time.Time, error) {
	return call(func(es *native.ErrState) (t time.Time, err error) {
		err = cvt("ASN1_TIME_to_tm", es, native.ASN1TimeToTime(es, h, &t))
		return
	})
}
