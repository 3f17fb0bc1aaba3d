package native

/*
time.go contains the UTCTime and GeneralizedTime routines: adjustment
from the current time, explicit setters, conversion and printing.
*/

import (
	"errors"
	"math"
	"strconv"
	"time"
)

// now is replaced by tests.
var now = time.Now

// UNIX seconds of 0000-01-01T00:00:00Z and 9999-12-31T23:59:59Z.
const (
	minTimeUnix = -62167219200
	maxTimeUnix = 253402300799
)

var monthAbbrev = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

func timeAt(es *ErrState, fn string, h Handle) *asn1String {
	s := stringAt(es, fn, h)
	if s != nil && s.typ != VUTCTime && s.typ != VGeneralizedTime {
		es.put(LibASN1, fn, ReasonWrongType)
		return nil
	}
	return s
}

/*
X509GmtimeAdj stores the current time shifted by adj seconds into s,
allocating a new time value when s is the null handle. Years from 1950
through 2049 are stored as UTCTime, all others as GeneralizedTime.
It returns the handle written, or the null handle on failure.
*/
func X509GmtimeAdj(es *ErrState, s Handle, adj int64) Handle {
	const fn = "X509_gmtime_adj"
	base := now().Unix()
	if (adj > 0 && base > math.MaxInt64-adj) || (adj < 0 && base < math.MinInt64-adj) ||
		base+adj < minTimeUnix || base+adj > maxTimeUnix {
		es.put(LibX509, fn, ReasonErrorGettingTime)
		return 0
	}
	t := time.Unix(base+adj, 0).UTC()
	return setTime(es, fn, s, t, t.Year() >= 1950 && t.Year() < 2050)
}

/*
ASN1GeneralizedTimeSet stores the UNIX time sec into s as a
GeneralizedTime, allocating when s is the null handle.
*/
func ASN1GeneralizedTimeSet(es *ErrState, s Handle, sec int64) Handle {
	return setTime(es, "ASN1_GENERALIZEDTIME_set", s, time.Unix(sec, 0).UTC(), false)
}

/*
ASN1TimeSet stores the UNIX time sec into s, choosing UTCTime or
GeneralizedTime by year, allocating when s is the null handle.
*/
func ASN1TimeSet(es *ErrState, s Handle, sec int64) Handle {
	t := time.Unix(sec, 0).UTC()
	return setTime(es, "ASN1_TIME_set", s, t, t.Year() >= 1950 && t.Year() < 2050)
}

/*
ASN1GeneralizedTimeSetString validates str as a GeneralizedTime value
(YYYYMMDDHHMMSS[.f{1,6}]Z) and stores it into s. It returns 1 on
success and 0 on failure.
*/
func ASN1GeneralizedTimeSetString(es *ErrState, s Handle, str string) int {
	const fn = "ASN1_GENERALIZEDTIME_set_string"
	v := stringAt(es, fn, s)
	if v == nil {
		return 0
	}
	if _, err := parseGeneralizedTime(str); err != nil {
		es.put(LibASN1, fn, ReasonInvalidTimeFormat)
		return 0
	}
	v.typ = VGeneralizedTime
	v.data = []byte(str)
	return 1
}

func setTime(es *ErrState, fn string, s Handle, t time.Time, utc bool) Handle {
	if t.Year() < 0 || t.Year() > 9999 {
		es.put(LibASN1, fn, ReasonErrorGettingTime)
		return 0
	}

	typ, data := VGeneralizedTime, formatGeneralizedTime(t.Truncate(time.Second))
	if utc {
		typ, data = VUTCTime, formatUTCTime(t)
	}

	if s == 0 {
		return alloc(&asn1String{typ: typ, data: []byte(data)})
	}

	v := stringAt(es, fn, s)
	if v == nil {
		return 0
	}
	v.typ, v.data = typ, []byte(data)
	return s
}

/*
ASN1TimeToTime converts h into a [time.Time] in UTC. It returns 1 on
success and 0 on failure.
*/
func ASN1TimeToTime(es *ErrState, h Handle, out *time.Time) int {
	const fn = "ASN1_TIME_to_tm"
	s := timeAt(es, fn, h)
	if s == nil {
		return 0
	}
	t, err := timeValue(s)
	if err != nil {
		es.put(LibASN1, fn, ReasonInvalidTimeFormat)
		return 0
	}
	*out = t
	return 1
}

/*
ASN1TimePrint writes h to bio in the form "Jan _2 15:04:05 2006 GMT",
keeping any fractional seconds of a GeneralizedTime. It returns 1 on
success and 0 on failure.
*/
func ASN1TimePrint(es *ErrState, bio Handle, h Handle) int {
	return timePrint(es, "ASN1_TIME_print", bio, timeAt(es, "ASN1_TIME_print", h))
}

/*
ASN1GeneralizedTimePrint is [ASN1TimePrint] restricted to values of type
GeneralizedTime.
*/
func ASN1GeneralizedTimePrint(es *ErrState, bio Handle, h Handle) int {
	const fn = "ASN1_GENERALIZEDTIME_print"
	s := timeAt(es, fn, h)
	if s != nil && s.typ != VGeneralizedTime {
		es.put(LibASN1, fn, ReasonWrongType)
		s = nil
	}
	return timePrint(es, fn, bio, s)
}

func timePrint(es *ErrState, fn string, bio Handle, s *asn1String) int {
	if s == nil {
		return 0
	}

	t, err := timeValue(s)
	if err != nil {
		es.put(LibASN1, fn, ReasonInvalidTimeFormat)
		return 0
	}

	var frac string
	if s.typ == VGeneralizedTime {
		if i := indexByte(s.data, '.'); i > 0 {
			frac = string(s.data[i : len(s.data)-1])
		}
	}

	day := strconv.Itoa(t.Day())
	if len(day) == 1 {
		day = " " + day
	}

	out := monthAbbrev[t.Month()-1] + " " + day + " " +
		pad2(t.Hour()) + ":" + pad2(t.Minute()) + ":" + pad2(t.Second()) +
		frac + " " + strconv.Itoa(t.Year()) + " GMT"

	if !bioWriteString(bio, out) {
		es.put(LibASN1, fn, ReasonWriteFailure)
		return 0
	}
	return 1
}

func timeValue(s *asn1String) (time.Time, error) {
	if s.typ == VUTCTime {
		return parseUTCTime(string(s.data))
	}
	return parseGeneralizedTime(string(s.data))
}

func pad2(v int) string {
	return string([]byte{byte('0' + v/10), byte('0' + v%10)})
}

func indexByte(b []byte, c byte) int {
	for i := range b {
		if b[i] == c {
			return i
		}
	}
	return -1
}

func digit(b byte) bool { return '0' <= b && b <= '9' }

func toInt(b0, b1 byte) int { return int(b0-'0')*10 + int(b1-'0') }

var errInvalidTime = errors.New("invalid time format")

// parseGeneralizedTime accepts YYYYMMDDHHMMSS[.f{1,6}]Z.
func parseGeneralizedTime(s string) (time.Time, error) {
	if len(s) < 15 || s[len(s)-1] != 'Z' {
		return time.Time{}, errInvalidTime
	}
	for k := 0; k < 14; k++ {
		if !digit(s[k]) {
			return time.Time{}, errInvalidTime
		}
	}

	year := toInt(s[0], s[1])*100 + toInt(s[2], s[3])
	mon, day := toInt(s[4], s[5]), toInt(s[6], s[7])
	hr, min, sec := toInt(s[8], s[9]), toInt(s[10], s[11]), toInt(s[12], s[13])

	nsec, i := 0, 14
	if s[i] == '.' || s[i] == ',' {
		i++
		start := i
		for i < len(s) && digit(s[i]) {
			i++
		}
		fd := i - start
		if fd == 0 || fd > 6 {
			return time.Time{}, errInvalidTime
		}
		frac := 0
		for j := start; j < i; j++ {
			frac = frac*10 + int(s[j]-'0')
		}
		for ; fd < 6; fd++ {
			frac *= 10
		}
		nsec = frac * 1_000
	}
	if i != len(s)-1 {
		return time.Time{}, errInvalidTime
	}

	return checkedDate(year, mon, day, hr, min, sec, nsec)
}

// parseUTCTime accepts YYMMDDHHMMSSZ; two-digit years below 50 fall in
// the 2000s.
func parseUTCTime(s string) (time.Time, error) {
	if len(s) != 13 || s[12] != 'Z' {
		return time.Time{}, errInvalidTime
	}
	for k := 0; k < 12; k++ {
		if !digit(s[k]) {
			return time.Time{}, errInvalidTime
		}
	}
	year := toInt(s[0], s[1])
	if year < 50 {
		year += 2000
	} else {
		year += 1900
	}
	return checkedDate(year, toInt(s[2], s[3]), toInt(s[4], s[5]),
		toInt(s[6], s[7]), toInt(s[8], s[9]), toInt(s[10], s[11]), 0)
}

func checkedDate(year, mon, day, hr, min, sec, nsec int) (time.Time, error) {
	if mon < 1 || mon > 12 || day < 1 || day > 31 || hr > 23 || min > 59 || sec > 59 {
		return time.Time{}, errInvalidTime
	}
	t := time.Date(year, time.Month(mon), day, hr, min, sec, nsec, time.UTC)
	if t.Day() != day {
		// day overflowed into the following month
		return time.Time{}, errInvalidTime
	}
	return t, nil
}

func formatGeneralizedTime(t time.Time) string {
	var buf [32]byte
	i := 0

	put2 := func(v int) {
		buf[i] = byte('0' + v/10)
		buf[i+1] = byte('0' + v%10)
		i += 2
	}

	year := t.Year()
	buf[0] = byte('0' + (year/1000)%10)
	buf[1] = byte('0' + (year/100)%10)
	buf[2] = byte('0' + (year/10)%10)
	buf[3] = byte('0' + year%10)
	i = 4
	put2(int(t.Month()))
	put2(t.Day())
	put2(t.Hour())
	put2(t.Minute())
	put2(t.Second())

	if nsec := t.Nanosecond(); nsec != 0 {
		frac := nsec / 1_000
		buf[i] = '.'
		i++
		start := i
		for p := 100_000; p >= 1; p /= 10 {
			buf[i] = byte('0' + (frac/p)%10)
			i++
		}
		for i > start && buf[i-1] == '0' {
			i--
		}
		if i == start {
			// sub-microsecond remainder only
			i--
		}
	}

	buf[i] = 'Z'
	i++
	return string(buf[:i])
}

func formatUTCTime(t time.Time) string {
	return pad2(t.Year()%100) + pad2(int(t.Month())) + pad2(t.Day()) +
		pad2(t.Hour()) + pad2(t.Minute()) + pad2(t.Second()) + "Z"
}

/*
FormatGeneralizedTime returns the GeneralizedTime content form of t
in UTC with microsecond precision, or the empty string when the year
falls outside 0 through 9999.
*/
func FormatGeneralizedTime(t time.Time) string {
	t = t.UTC()
	if t.Year() < 0 || t.Year() > 9999 {
		return ""
	}
	return formatGeneralizedTime(t)
}
