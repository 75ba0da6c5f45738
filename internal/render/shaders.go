package render

import _ "embed"

// Shader sources are embedded so the binary stays self-contained.

//go:embed shaders/shader.vert
var VertexShader []byte

//go:embed shaders/shader.frag
var FragmentShader []byte
