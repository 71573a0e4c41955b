package gfid

import (
	"strings"
	"testing"

	xerrors "github.com/gluster/glusterxattr/pkg/xattr/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	ids := []string{
		"bb74c663-2552-41aa-a0ae-d4d94d9dd187",
		"0a118af0-3c20-4bdd-aded-694a17af6b5a",
		"00000000-0000-0000-0000-000000000001",
		"ffffffff-ffff-ffff-ffff-ffffffffffff",
	}

	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			b, err := Encode(id)
			require.NoError(t, err)
			require.Len(t, b, Size)

			got, err := Decode(b)
			require.NoError(t, err)
			assert.Equal(t, id, got)
		})
	}
}

func TestEncode_CaseInsensitive(t *testing.T) {
	t.Parallel()

	upper := strings.ToUpper("af95963b-bbe6-49cb-bf6d-db7260ea6f72")
	b, err := Encode(upper)
	require.NoError(t, err)

	got, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, "af95963b-bbe6-49cb-bf6d-db7260ea6f72", got)
}

func TestEncode_Bytes(t *testing.T) {
	t.Parallel()

	b, err := Encode("00112233-4455-6677-8899-aabbccddeeff")
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
		0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff,
	}, b)
}

func TestEncode_Malformed(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"not-a-uuid",
		"",
		"bb74c663255241aaa0aed4d94d9dd187",
		"{bb74c663-2552-41aa-a0ae-d4d94d9dd187}",
		"urn:uuid:bb74c663-2552-41aa-a0ae-d4d94d9dd187",
		"zz74c663-2552-41aa-a0ae-d4d94d9dd187",
		"bb74c663x2552-41aa-a0ae-d4d94d9dd187",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			var err error
			assert.NotPanics(t, func() { _, err = Encode(in) })
			require.Error(t, err)
			assert.True(t, xerrors.IsMalformed(err), "got %v", err)
		})
	}
}

func TestDecode_WrongLength(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 15, 17, 32} {
		_, err := Decode(make([]byte, n))
		require.Error(t, err, "length %d", n)
		assert.True(t, xerrors.IsMalformed(err))
	}
}

func TestCanonical(t *testing.T) {
	t.Parallel()

	got, err := Canonical("BB74C663-2552-41AA-A0AE-D4D94D9DD187")
	require.NoError(t, err)
	assert.Equal(t, "bb74c663-2552-41aa-a0ae-d4d94d9dd187", got)

	_, err = Canonical("nope")
	assert.True(t, xerrors.IsMalformed(err))
}

func TestNew(t *testing.T) {
	t.Parallel()

	a, b := New(), New()
	assert.NotEqual(t, a, b)

	_, err := Encode(a)
	assert.NoError(t, err)
}
