package hex_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gohornet/hexutil/pkg/hex"
)

func TestToHex(t *testing.T) {
	var tests = []*struct {
		bytes []byte
		s     string
	}{
		{bytes: []byte{}, s: ""},
		{bytes: []byte{0, 0, 0, 0}, s: "00000000"},
		{bytes: []byte{10, 11, 12, 13}, s: "0a0b0c0d"},
		{bytes: []byte{0, 0, 0, 255}, s: "000000ff"},
		{bytes: []byte{0xde, 0xad, 0xbe, 0xef}, s: "deadbeef"},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			assert.Equal(t, tt.s, hex.ToHex(tt.bytes))
		})
	}
}

func TestToHexSigned(t *testing.T) {
	assert.Equal(t, "007f80ff", hex.ToHex([]int8{0, 127, -128, -1}))
}

func TestToHexMultiple(t *testing.T) {
	hexed := hex.ToHexMultiple([][]byte{{16, 32}, {48, 64}})
	assert.Equal(t, []string{"1020", "3040"}, hexed)

	assert.Empty(t, hex.ToHexMultiple(nil))
	assert.Equal(t, []string{""}, hex.ToHexMultiple([][]byte{{}}))
}

func TestFromHex(t *testing.T) {
	var tests = []*struct {
		s      string
		bytes  []byte
		expErr error
	}{
		// valid encoding
		{s: "", bytes: []byte{}},
		{s: "   ", bytes: []byte{}},
		{s: "0x", bytes: []byte{}},
		{s: "00000000", bytes: []byte{0, 0, 0, 0}},
		{s: "0a0b0c0d", bytes: []byte{10, 11, 12, 13}},
		{s: " 0a0b0c0d  ", bytes: []byte{10, 11, 12, 13}},
		{s: "000000ff", bytes: []byte{0, 0, 0, 255}},
		{s: "0x800000ff", bytes: []byte{128, 0, 0, 255}},
		{s: "\t0x0a0b\n", bytes: []byte{10, 11}},
		{s: "ABCDEF", bytes: []byte{0xab, 0xcd, 0xef}},
		{s: "ab ", bytes: []byte{0xab}},

		// invalid encoding
		{s: "800", expErr: hex.ErrLength},
		{s: " 0x0 ", expErr: hex.ErrLength},
		{s: "8080gf", expErr: hex.ErrInvalidCharacter},
		{s: "1234567890ABCDEFG1", expErr: hex.ErrInvalidCharacter},
		{s: "0X0a", expErr: hex.ErrInvalidCharacter},
		{s: "0x0x", expErr: hex.ErrInvalidCharacter},
		{s: "+f", expErr: hex.ErrInvalidCharacter},
		{s: "🖖🥴", expErr: hex.ErrHexConversion},
		{s: "ab\u00a0", expErr: hex.ErrHexConversion},
		{s: "ab\u00a0c", expErr: hex.ErrLength},
		{s: "é", expErr: hex.ErrHexConversion},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.s), func(t *testing.T) {
			bytes, err := hex.FromHex(tt.s)
			if tt.expErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.bytes, bytes)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expErr)
			assert.Nil(t, bytes)
		})
	}
}

func TestFromHexWhitespaceAndPrefix(t *testing.T) {
	plain, err := hex.FromHex("0a0b0c0d")
	require.NoError(t, err)

	padded, err := hex.FromHex(" 0a0b0c0d  ")
	require.NoError(t, err)

	prefixed, err := hex.FromHex("0x0a0b0c0d")
	require.NoError(t, err)

	assert.Equal(t, plain, padded)
	assert.Equal(t, plain, prefixed)
}

func TestFromHexErrorPriority(t *testing.T) {
	// odd length is reported before the non ASCII check
	_, err := hex.FromHex("é0")
	assert.ErrorIs(t, err, hex.ErrLength)

	// non ASCII is reported before invalid characters
	_, err = hex.FromHex("zzé")
	assert.ErrorIs(t, err, hex.ErrHexConversion)

	// non ASCII whitespace is trimmed but still rejects the input
	_, err = hex.FromHex("\u00a0abc")
	assert.ErrorIs(t, err, hex.ErrLength)
	_, err = hex.FromHex("\u2003ab")
	assert.ErrorIs(t, err, hex.ErrHexConversion)
}

func TestFromHexMultiByteNeverPanics(t *testing.T) {
	inputs := []string{"🖖🥴", "🖖", "a🖖", "🖖a", "ab🖖🥴cd", "0x🖖", "日本", "日本語"}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			_, err := hex.FromHex(input)
			assert.Error(t, err)
		})
	}
}

func TestLengthError(t *testing.T) {
	_, err := hex.FromHex("800")
	require.Error(t, err)

	var hexErr *hex.HexError
	require.True(t, errors.As(err, &hexErr))
	assert.Equal(t, hex.KindLength, hexErr.Kind)
	assert.Equal(t, "Hex string lengths must be a multiple of 2", err.Error())
}

func TestCharacterError(t *testing.T) {
	_, err := hex.FromHex("1234567890ABCDEFG1")
	require.Error(t, err)

	assert.True(t, hex.IsKind(err, hex.KindInvalidCharacter))
	assert.Equal(t, "Only hexadecimal characters (0-9,a-f) are permitted", err.Error())

	// the parse failure is kept as cause
	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "G1", numErr.Num)
	assert.ErrorIs(t, errors.Cause(err), strconv.ErrSyntax)
}

func TestConversionError(t *testing.T) {
	_, err := hex.FromHex("🖖🥴")
	require.Error(t, err)
	assert.True(t, hex.IsKind(err, hex.KindHexConversion))
	assert.False(t, hex.IsKind(err, hex.KindLength))
	assert.Equal(t, "Invalid hex representation for the target type", err.Error())
}

func TestWrappedErrorKeepsKind(t *testing.T) {
	_, err := hex.FromHex("800")
	wrapped := errors.Wrap(err, "decoding block ID failed")

	assert.ErrorIs(t, wrapped, hex.ErrLength)
	assert.NotErrorIs(t, wrapped, hex.ErrInvalidCharacter)
	assert.Equal(t, "decoding block ID failed: Hex string lengths must be a multiple of 2", wrapped.Error())
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		bytes := make([]byte, r.Intn(64))
		r.Read(bytes)

		hexStr := hex.ToHex(bytes)
		assert.Len(t, hexStr, 2*len(bytes))
		assert.Regexp(t, "^[0-9a-f]*$", hexStr)

		decoded, err := hex.FromHex(hexStr)
		require.NoError(t, err)
		assert.Equal(t, bytes, decoded)
	}
}

func TestSentinelsAreKinds(t *testing.T) {
	assert.Equal(t, hex.KindLength, hex.ErrLength)
	assert.Equal(t, hex.KindInvalidCharacter, hex.ErrInvalidCharacter)
	assert.Equal(t, hex.KindHexConversion, hex.ErrHexConversion)
	assert.Equal(t, "Hex string lengths must be a multiple of 2", hex.ErrLength.Error())

	// every call returns its own error, changing one doesn't leak into others
	_, err := hex.FromHex("800")
	var hexErr *hex.HexError
	require.True(t, errors.As(err, &hexErr))
	hexErr.Err = errors.New("changed")

	_, err = hex.FromHex("800")
	require.ErrorIs(t, err, hex.ErrLength)
	assert.Nil(t, errors.Unwrap(err))
	assert.Equal(t, "Hex string lengths must be a multiple of 2", err.Error())
}
