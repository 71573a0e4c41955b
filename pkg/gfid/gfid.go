// Package gfid converts GlusterFS identifiers (GFIDs and volume-ids) between
// their hyphenated text form and the 16 raw bytes stored in the
// trusted.gfid and trusted.glusterfs.volume-id attributes.
package gfid

import (
	"fmt"

	xerrors "github.com/gluster/glusterxattr/pkg/xattr/errors"
	"github.com/google/uuid"
)

// Size is the length of an encoded identifier in bytes.
const Size = 16

// textLen is the length of the hyphenated form xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
const textLen = 36

// Encode parses a hyphenated UUID and returns its 16-byte representation.
// Input is case-insensitive. Braced, urn: and unhyphenated forms are rejected.
func Encode(text string) ([]byte, error) {
	if len(text) != textLen {
		return nil, xerrors.NewMalformedIdentifierError(
			fmt.Sprintf("invalid identifier %q: want %d characters, got %d", text, textLen, len(text)), nil)
	}

	id, err := uuid.Parse(text)
	if err != nil {
		return nil, xerrors.NewMalformedIdentifierError(fmt.Sprintf("invalid identifier %q", text), err)
	}

	b := make([]byte, Size)
	copy(b, id[:])
	return b, nil
}

// Decode interprets exactly 16 bytes as an identifier and returns its
// canonical lowercase hyphenated form.
func Decode(b []byte) (string, error) {
	if len(b) != Size {
		return "", xerrors.NewMalformedIdentifierError(
			fmt.Sprintf("invalid identifier length: want %d bytes, got %d", Size, len(b)), nil)
	}

	id, err := uuid.FromBytes(b)
	if err != nil {
		return "", xerrors.NewMalformedIdentifierError("invalid identifier bytes", err)
	}
	return id.String(), nil
}

// Canonical returns the lowercase hyphenated form of text, or a
// MalformedIdentifier error.
func Canonical(text string) (string, error) {
	b, err := Encode(text)
	if err != nil {
		return "", err
	}
	return Decode(b)
}

// New returns a fresh random identifier.
func New() string {
	return uuid.NewString()
}
