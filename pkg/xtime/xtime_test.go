package xtime

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Layout(t *testing.T) {
	t.Parallel()

	got := Encode(New(0x01020304, 0x0a0b0c0d))
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x0a, 0x0b, 0x0c, 0x0d}, got)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sec  uint32
		usec uint32
	}{
		{"zero", 0, 0},
		{"small", 100, 2},
		{"realistic", 1481540557, 16683},
		{"usec above one million", 1481540557, 2_500_000},
		{"max", math.MaxUint32, math.MaxUint32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Encode(New(tt.sec, tt.usec))
			require.Len(t, b, Size)

			got := Decode(b)
			assert.Equal(t, tt.sec, got.Sec)
			assert.Equal(t, tt.usec, got.Usec)
		})
	}
}

func TestDecode_Lenient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		want  Xtime
	}{
		{"nil", nil, Xtime{}},
		{"empty", []byte{}, Xtime{}},
		{"partial seconds", []byte{0x00, 0x01}, Xtime{}},
		{"seconds only", []byte{0x00, 0x00, 0x00, 0x64}, Xtime{Sec: 100}},
		{"partial usec", []byte{0x00, 0x00, 0x00, 0x64, 0x00, 0x02}, Xtime{Sec: 100}},
		{"trailing bytes ignored", []byte{0, 0, 0, 100, 0, 0, 0, 2, 0xff, 0xff}, Xtime{Sec: 100, Usec: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.input))
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestEncodeTo_PropagatesWriteError(t *testing.T) {
	t.Parallel()

	err := EncodeTo(failingWriter{}, New(1, 2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink closed")
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "100.000002", New(100, 2).String())
	assert.Equal(t, "1.2500000", New(1, 2_500_000).String())
}

func TestFromTime(t *testing.T) {
	t.Parallel()

	ts := time.Unix(1481540557, 16683*int64(time.Microsecond))
	x := FromTime(ts)
	assert.Equal(t, New(1481540557, 16683), x)
	assert.True(t, x.Time().Equal(ts))
}

func TestBefore(t *testing.T) {
	t.Parallel()

	assert.True(t, New(1, 5).Before(New(2, 0)))
	assert.True(t, New(1, 5).Before(New(1, 6)))
	assert.False(t, New(1, 6).Before(New(1, 6)))
	assert.False(t, New(3, 0).Before(New(2, 9)))
	assert.True(t, Xtime{}.IsZero())
}
