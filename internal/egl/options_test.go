package egl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigAttributes_WithAlpha(t *testing.T) {
	attribs := configAttributes(true)

	require.Equal(t, int32(None), attribs[len(attribs)-1])
	assert.Contains(t, pairs(t, attribs), [2]int32{AlphaSize, 8})
}

func TestConfigAttributes_WithoutAlpha(t *testing.T) {
	attribs := configAttributes(false)

	require.Equal(t, int32(None), attribs[len(attribs)-1])
	for _, p := range pairs(t, attribs) {
		assert.NotEqual(t, int32(AlphaSize), p[0])
	}
}

func TestConfigAttributes_RequestsWindowGLES2(t *testing.T) {
	got := pairs(t, configAttributes(true))

	assert.Contains(t, got, [2]int32{SurfaceType, WindowBit})
	assert.Contains(t, got, [2]int32{RenderableType, OpenGLES2Bit})
	assert.Contains(t, got, [2]int32{RedSize, 8})
	assert.Contains(t, got, [2]int32{GreenSize, 8})
	assert.Contains(t, got, [2]int32{BlueSize, 8})
}

func TestContextAttributes(t *testing.T) {
	assert.Equal(t, []int32{ContextClientVersion, 2, None}, contextAttributes())
}

// pairs splits a terminated attribute list into key/value pairs.
func pairs(t *testing.T, attribs []int32) [][2]int32 {
	t.Helper()
	require.Equal(t, 1, len(attribs)%2, "attribute list must be pairs plus terminator")

	var out [][2]int32
	for i := 0; i+1 < len(attribs); i += 2 {
		out = append(out, [2]int32{attribs[i], attribs[i+1]})
	}
	return out
}
