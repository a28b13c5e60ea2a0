package codedenum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color int

const (
	red color = iota + 1
	green
)

func TestCodec_RoundTrip(t *testing.T) {
	c := New("color", map[color]string{red: "RED", green: "GREEN"})

	code, err := c.Code(green)
	require.NoError(t, err)
	assert.Equal(t, "GREEN", code)

	v, err := c.Parse("green")
	require.NoError(t, err)
	assert.Equal(t, green, v)

	v, err = c.Parse(" RED ")
	require.NoError(t, err)
	assert.Equal(t, red, v)
}

func TestCodec_UnsupportedCode(t *testing.T) {
	c := New("color", map[color]string{red: "RED"})

	_, err := c.Parse("blue")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedCode)
	assert.Contains(t, err.Error(), "color")

	_, err = c.Code(green)
	assert.ErrorIs(t, err, ErrUnsupportedCode)
}

func TestNew_DuplicateCodePanics(t *testing.T) {
	assert.Panics(t, func() {
		New("color", map[color]string{red: "X", green: "x"})
	})
}

type shade int

var shadeCodec = New("shade", map[shade]string{1: "DARK"})

// String идёт через Codec, как у перечислений в models.
func (s shade) String() string {
	code, err := shadeCodec.Code(s)
	if err != nil {
		return "shade?"
	}
	return code
}

func TestCodec_CodeOfUnknownStringerValue(t *testing.T) {
	_, err := shadeCodec.Code(shade(0))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedCode)
	assert.Contains(t, err.Error(), "0 for enum shade")
	assert.Equal(t, "shade?", shade(7).String())
}
