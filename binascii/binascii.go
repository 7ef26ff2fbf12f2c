// Package binascii converts between binary data and its hexadecimal ASCII
// representation.
// Both functions are pure, stateless transforms, safe for concurrent use.
package binascii

import (
	"errors"
	"fmt"
)

var (
	// ErrOddLength is returned when the input to [Unhexlify] does not have
	// an even length.
	ErrOddLength = errors.New("input must have even length")

	// ErrInvalidChar is returned when the input to [Unhexlify] contains
	// a character outside [0-9a-fA-F].
	ErrInvalidChar = errors.New("invalid hexadecimal character")
)

var glyphs = [16]byte{
	'0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9', 'a', 'b', 'c', 'd', 'e', 'f',
}

// Hexlify returns the lowercase hexadecimal representation of data.
// Every input byte produces exactly two output characters.
func Hexlify(data []byte) string {
	hex := make([]byte, 0, len(data)*2)
	for _, b := range data {
		hex = append(hex, glyphs[b>>4], glyphs[b&0x0f])
	}
	return string(hex)
}

// Unhexlify converts a hexadecimal string back to bytes.
// Both lowercase and uppercase digits are accepted.
func Unhexlify(hex string) ([]byte, error) {
	if len(hex)%2 != 0 {
		return nil, fmt.Errorf("unhexlify: %w: %d", ErrOddLength, len(hex))
	}
	data := make([]byte, len(hex)/2)
	for i := 0; i < len(hex); i += 2 {
		hi, ok := digit(hex[i])
		if !ok {
			return nil, fmt.Errorf("unhexlify: %w: %q", ErrInvalidChar, hex[i])
		}
		lo, ok := digit(hex[i+1])
		if !ok {
			return nil, fmt.Errorf("unhexlify: %w: %q", ErrInvalidChar, hex[i+1])
		}
		data[i/2] = hi<<4 | lo
	}
	return data, nil
}

func digit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
