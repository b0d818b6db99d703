package gapset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_String(t *testing.T) {
	for _, rep := range allReps {
		assert.Equal(t, "00011001", inRep[U8](t, rep, 0, 3, 4).String(), rep.String())
	}
	assert.Equal(t, strings.Repeat("1", 16), saturatedSparse[U16]().String())
	assert.Equal(t, strings.Repeat("0", 16), saturatedFull[U16]().String())
}

func TestText_Parse(t *testing.T) {
	b, err := Parse[U8]("00011001")
	require.NoError(t, err)
	assertBits(t, []int{0, 3, 4}, b)

	b, err = Parse[U8]("101")
	require.NoError(t, err)
	assertBits(t, []int{0, 2}, b)

	b64, err := Parse[U64](strings.Repeat("1", 64))
	require.NoError(t, err)
	assert.Equal(t, 64, b64.Count())
	assert.Equal(t, Full, b64.Representation())

	bk, err := Parse[U1024](strings.Repeat("0", 1024))
	require.NoError(t, err)
	assert.True(t, bk.None())
	assert.Equal(t, Sparse, bk.Representation())
}

func TestText_ParseErrors(t *testing.T) {
	for name, s := range map[string]string{
		"empty":     "",
		"too long":  "000000000",
		"bad char":  "0012",
		"space":     "01 1",
		"multibyte": "0é",
	} {
		t.Run(name, func(t *testing.T) {
			b, err := Parse[U8](s)
			assert.ErrorIs(t, err, ErrSyntax)
			assert.Nil(t, b)
		})
	}
}

func TestText_MarshalRoundTrip(t *testing.T) {
	for _, rep := range allReps {
		b := inRep[U256](t, rep, 0, 1, 2, 100, 255)
		text, err := b.MarshalText()
		require.NoError(t, err)
		assert.Len(t, text, 256)

		got := Of[U256](7)
		require.NoError(t, got.UnmarshalText(text))
		assert.True(t, b.Equal(got), rep.String())
	}
}

func TestText_UnmarshalErrorClears(t *testing.T) {
	b := Of[U16](1, 2, 3)
	err := b.UnmarshalText([]byte("x"))
	assert.ErrorIs(t, err, ErrSyntax)
	assert.True(t, b.None())
}

func TestText_AgreesWithFromUint64(t *testing.T) {
	for _, x := range []uint64{0, 1, 0xA5, 0xFFFF, 1 << 63} {
		b := FromUint64[U64](x)
		p, err := Parse[U64](b.String())
		require.NoError(t, err)
		assert.True(t, b.Equal(p), "%#x", x)
	}
}
