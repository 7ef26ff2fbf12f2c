// Package base16 implements the PushCoin variant of the base-16 codec.
// It uses a restricted alphabet chosen to be friendly and less error prone
// to read aloud or transcribe:
//
//	A C E F H K L N P R T X Y 4 5 7
//
// The codec is a pure, stateless transform, safe for concurrent use.
// Lowercase input is accepted after normalization; the encoded form always
// uses uppercase letters.
package base16

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOddLength is returned when the input to [Decode] does not have
	// an even length.
	ErrOddLength = errors.New("input must have even length")

	// ErrInvalidChar is returned when the input to [Decode] contains
	// a character outside the alphabet.
	ErrInvalidChar = errors.New("character outside the alphabet")
)

// alphabet maps each quartet value to its symbol.
var alphabet = [16]byte{
	'A', 'C', 'E', 'F', 'H', 'K', 'L', 'N',
	'P', 'R', 'T', 'X', 'Y', '4', '5', '7',
}

const invalid = 0xff

// quartets maps a symbol back to its quartet value, or to invalid.
var quartets [256]byte

func init() {
	for i := range quartets {
		quartets[i] = invalid
	}
	for v, c := range alphabet {
		quartets[c] = byte(v)
	}
}

// Normalize prepares input for decoding by uppercasing it and removing every
// character that is not part of the alphabet, such as separators added for
// readability.
func Normalize(input string) string {
	upper := strings.ToUpper(input)
	var purified strings.Builder
	purified.Grow(len(upper))
	for i := 0; i < len(upper); i++ {
		if quartets[upper[i]] != invalid {
			purified.WriteByte(upper[i])
		}
	}
	return purified.String()
}

// Encode returns the printable representation of data.
// Every input byte produces exactly two alphabet symbols.
func Encode(data []byte) string {
	printable := make([]byte, 0, len(data)*2)
	for _, b := range data {
		printable = append(printable, alphabet[b>>4], alphabet[b&0x0f])
	}
	return string(printable)
}

// Decode converts a printable string back to bytes.
// If cleanUp is true, the input is passed through [Normalize] first;
// otherwise any character outside the alphabet is an error.
func Decode(printable string, cleanUp bool) ([]byte, error) {
	if cleanUp {
		printable = Normalize(printable)
	}
	if len(printable)%2 != 0 {
		return nil, fmt.Errorf("decoding %q: %w", printable, ErrOddLength)
	}
	data := make([]byte, len(printable)/2)
	for i := 0; i < len(printable); i += 2 {
		hi := quartets[printable[i]]
		lo := quartets[printable[i+1]]
		if hi == invalid || lo == invalid {
			return nil, fmt.Errorf("decoding %q: %w", printable, ErrInvalidChar)
		}
		data[i/2] = hi<<4 | lo
	}
	return data, nil
}
