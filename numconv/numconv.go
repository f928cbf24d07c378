// Package numconv converts between integers and decimal text held in
// strslice views.
//
// All formatting goes through one digit producer. FormatUint and FormatInt
// return views into a caller-owned Buffer; WriteUint and WriteInt print
// directly to a Sink. Nothing is shared between calls, so the functions are
// safe to use from several goroutines.
package numconv

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/rawtext/strslice"
)

// MaxDigits is the longest decimal rendering of a uint64, and of an int64
// including its sign.
const MaxDigits = 20

var (
	// ErrSyntax is returned when the text is empty or holds a non-digit byte.
	ErrSyntax = errors.New("numconv: invalid syntax")
	// ErrRange is returned when the value does not fit the target type.
	ErrRange = errors.New("numconv: value out of range")
)

// Buffer is scratch space for one formatted integer.
type Buffer [MaxDigits]byte

// Sink receives formatted output.
type Sink interface {
	Write(p []byte) (int, error)
	WriteByte(c byte) error
}

// digits renders n into the tail of buf, least significant digit first,
// and returns the used tail. Zero is not produced by the loop and is handled
// separately.
func digits(buf *Buffer, n uint64) []byte {
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
		return buf[i:]
	}
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	return buf[i:]
}

func magnitude(n int64) (uint64, bool) {
	if n < 0 {
		// -(n+1)+1 avoids overflowing on math.MinInt64.
		return uint64(-(n + 1)) + 1, true
	}
	return uint64(n), false
}

// FormatUint renders n into buf and returns a view of the digits.
// The view is valid as long as buf is.
func FormatUint(buf *Buffer, n uint64) strslice.Slice {
	return strslice.FromBytes(digits(buf, n))
}

// FormatInt renders n, with a leading '-' when negative, into buf.
func FormatInt(buf *Buffer, n int64) strslice.Slice {
	u, neg := magnitude(n)
	d := digits(buf, u)
	if !neg {
		return strslice.FromBytes(d)
	}
	start := len(buf) - len(d) - 1
	buf[start] = '-'
	return strslice.FromBytes(buf[start:])
}

// WriteUint prints n to sink.
func WriteUint(sink Sink, n uint64) error {
	var buf Buffer
	_, err := sink.Write(digits(&buf, n))
	return err
}

// WriteInt prints n to sink, emitting '-' first when n is negative.
func WriteInt(sink Sink, n int64) error {
	u, neg := magnitude(n)
	if neg {
		if err := sink.WriteByte('-'); err != nil {
			return err
		}
	}
	return WriteUint(sink, u)
}

// AppendUint appends the decimal form of n to dst.
func AppendUint(dst []byte, n uint64) []byte {
	var buf Buffer
	return append(dst, digits(&buf, n)...)
}

// AppendInt appends the decimal form of n to dst.
func AppendInt(dst []byte, n int64) []byte {
	var buf Buffer
	return append(dst, FormatInt(&buf, n).Bytes()...)
}

// ParseUint folds the digits of s into a value. It does not validate its
// input and silently wraps on overflow; use ParseUintChecked for untrusted text.
func ParseUint(s strslice.Slice) uint64 {
	var acc uint64
	for i := 0; i < s.Len(); i++ {
		acc = acc*10 + uint64(s.At(i)-'0')
	}
	return acc
}

// ParseUintChecked parses s as a non-negative decimal integer, rejecting
// empty input, non-digit bytes and values above math.MaxUint64.
func ParseUintChecked(s strslice.Slice) (uint64, error) {
	if !IsNumber(s) {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s.String())
	}
	var acc uint64
	for i := 0; i < s.Len(); i++ {
		d := uint64(s.At(i) - '0')
		if acc > (math.MaxUint64-d)/10 {
			return 0, fmt.Errorf("%w: %q", ErrRange, s.String())
		}
		acc = acc*10 + d
	}
	return acc, nil
}

// ParseInt parses s as a decimal integer with an optional leading '-'.
func ParseInt(s strslice.Slice) (int64, error) {
	digitsOnly := s
	neg := false
	if c, ok := s.TryAt(0); ok && c == '-' {
		neg = true
		digitsOnly = s.Advance(1)
	}
	u, err := ParseUintChecked(digitsOnly)
	if err != nil {
		if errors.Is(err, ErrSyntax) {
			return 0, fmt.Errorf("%w: %q", ErrSyntax, s.String())
		}
		return 0, fmt.Errorf("%w: %q", ErrRange, s.String())
	}
	if neg && u != 0 {
		if u > uint64(math.MaxInt64)+1 {
			return 0, fmt.Errorf("%w: %q", ErrRange, s.String())
		}
		return -int64(u - 1) - 1, nil
	}
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q", ErrRange, s.String())
	}
	return int64(u), nil
}

// IsAllDigits reports whether every byte of s is in '0'..'9'.
//
// An empty s has no non-digit byte and therefore reports true. Callers that
// need at least one digit should use IsNumber.
func IsAllDigits(s strslice.Slice) bool {
	for i := 0; i < s.Len(); i++ {
		if c := s.At(i); c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// IsNumber reports whether s is a non-empty run of decimal digits.
func IsNumber(s strslice.Slice) bool {
	return !s.IsEmpty() && IsAllDigits(s)
}
