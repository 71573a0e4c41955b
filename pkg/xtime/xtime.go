// Package xtime encodes and decodes the (seconds, subseconds) pairs stored in
// the geo-replication xtime and stime attributes.
//
// Wire format (8 bytes, XDR unsigned integers):
//
//	[sec:uint32 BE][usec:uint32 BE]
package xtime

import (
	"bytes"
	"fmt"
	"io"
	"time"

	xdr "github.com/rasky/go-xdr/xdr2"
)

// Size is the length of an encoded Xtime in bytes.
const Size = 8

// Xtime is a change or sync marker. Usec is an application-defined sub-second
// count; it is never normalised and may exceed one million.
type Xtime struct {
	Sec  uint32 `json:"sec" yaml:"sec"`
	Usec uint32 `json:"usec" yaml:"usec"`
}

// New returns the Xtime (sec, usec).
func New(sec, usec uint32) Xtime {
	return Xtime{Sec: sec, Usec: usec}
}

// FromTime converts t to an Xtime with microsecond precision.
func FromTime(t time.Time) Xtime {
	return Xtime{
		Sec:  uint32(t.Unix()),
		Usec: uint32(t.Nanosecond() / int(time.Microsecond)),
	}
}

// Time returns x as a time.Time, treating Usec as microseconds.
func (x Xtime) Time() time.Time {
	return time.Unix(int64(x.Sec), int64(x.Usec)*int64(time.Microsecond))
}

// IsZero reports whether both fields are zero.
func (x Xtime) IsZero() bool {
	return x.Sec == 0 && x.Usec == 0
}

// Before reports whether x sorts before y.
func (x Xtime) Before(y Xtime) bool {
	if x.Sec != y.Sec {
		return x.Sec < y.Sec
	}
	return x.Usec < y.Usec
}

// String formats x as "<sec>.<usec>".
func (x Xtime) String() string {
	return fmt.Sprintf("%d.%06d", x.Sec, x.Usec)
}

// Encode returns the 8-byte encoding of x.
func Encode(x Xtime) []byte {
	var buf bytes.Buffer
	buf.Grow(Size)
	// bytes.Buffer writes cannot fail
	_ = EncodeTo(&buf, x)
	return buf.Bytes()
}

// EncodeTo writes the 8-byte encoding of x to w.
func EncodeTo(w io.Writer, x Xtime) error {
	if _, err := xdr.Marshal(w, &x); err != nil {
		return fmt.Errorf("encode xtime: %w", err)
	}
	return nil
}

// Decode reads an Xtime from b. A field with fewer than four bytes available
// decodes as zero, so truncated or empty values never fail. Bytes past the
// eighth are ignored.
func Decode(b []byte) Xtime {
	r := bytes.NewReader(b)
	return Xtime{
		Sec:  readField(r),
		Usec: readField(r),
	}
}

func readField(r io.Reader) uint32 {
	var v uint32
	if _, err := xdr.Unmarshal(r, &v); err != nil {
		return 0
	}
	return v
}
