package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedShaders(t *testing.T) {
	require.NotEmpty(t, VertexShader)
	require.NotEmpty(t, FragmentShader)

	// Sources are NUL-terminated at upload time; embedded text must not
	// carry its own terminator.
	assert.NotContains(t, string(VertexShader), "\x00")
	assert.NotContains(t, string(FragmentShader), "\x00")

	assert.Contains(t, string(VertexShader), "gl_Position")
	assert.Contains(t, string(FragmentShader), "gl_FragColor")
}
