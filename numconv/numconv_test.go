package numconv

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/hupe1980/rawtext/strslice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUint(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{10, "10"},
		{1234, "1234"},
		{math.MaxUint64, "18446744073709551615"},
	}

	for _, tt := range tests {
		var buf Buffer
		assert.Equal(t, tt.want, FormatUint(&buf, tt.n).String())
	}
}

func TestFormatInt(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{-45, "-45"},
		{45, "45"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}

	for _, tt := range tests {
		var buf Buffer
		assert.Equal(t, tt.want, FormatInt(&buf, tt.n).String())
		assert.Equal(t, tt.want, string(AppendInt(nil, tt.n)))
	}
}

func TestWriteInt(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, WriteInt(&out, -45))
	assert.Equal(t, "-45", out.String())

	out.Reset()
	require.NoError(t, WriteInt(&out, math.MinInt64))
	assert.Equal(t, "-9223372036854775808", out.String())

	out.Reset()
	require.NoError(t, WriteUint(&out, 0))
	assert.Equal(t, "0", out.String())
}

type failingSink struct{ err error }

func (f failingSink) Write(p []byte) (int, error) { return 0, f.err }
func (f failingSink) WriteByte(byte) error        { return f.err }

func TestWriteInt_SinkError(t *testing.T) {
	boom := errors.New("boom")
	assert.ErrorIs(t, WriteInt(failingSink{boom}, -1), boom)
	assert.ErrorIs(t, WriteInt(failingSink{boom}, 1), boom)
}

func TestParseUint_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 9, 10, 99, 100, 1234, 65535, 1 << 32, math.MaxUint64}
	for n := uint64(1); n < math.MaxUint64/3; n *= 3 {
		values = append(values, n, n-1)
	}

	for _, n := range values {
		var buf Buffer
		s := FormatUint(&buf, n)
		assert.Equal(t, n, ParseUint(s), "n=%d", n)

		checked, err := ParseUintChecked(s)
		require.NoError(t, err)
		assert.Equal(t, n, checked)
	}
}

func TestParseUintChecked_Errors(t *testing.T) {
	_, err := ParseUintChecked(strslice.Slice{})
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = ParseUintChecked(strslice.FromString("12a"))
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = ParseUintChecked(strslice.FromString("18446744073709551616"))
	assert.ErrorIs(t, err, ErrRange)
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{in: "0", want: 0},
		{in: "-0", want: 0},
		{in: "42", want: 42},
		{in: "-45", want: -45},
		{in: "9223372036854775807", want: math.MaxInt64},
		{in: "-9223372036854775808", want: math.MinInt64},
		{in: "9223372036854775808", wantErr: ErrRange},
		{in: "-9223372036854775809", wantErr: ErrRange},
		{in: "-", wantErr: ErrSyntax},
		{in: "", wantErr: ErrSyntax},
		{in: "+1", wantErr: ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInt(strslice.FromString(tt.in))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsAllDigits(t *testing.T) {
	assert.True(t, IsAllDigits(strslice.FromString("0123456789")))
	assert.False(t, IsAllDigits(strslice.FromString("12 3")))
	assert.False(t, IsAllDigits(strslice.FromString("-1")))

	// The empty slice has no offending byte.
	assert.True(t, IsAllDigits(strslice.Slice{}))
	assert.False(t, IsNumber(strslice.Slice{}))
	assert.True(t, IsNumber(strslice.FromString("7")))
}

func BenchmarkFormatUint(b *testing.B) {
	var buf Buffer
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = FormatUint(&buf, uint64(i))
	}
}
