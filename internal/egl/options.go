package egl

// Options configures framebuffer selection and presentation behavior.
type Options struct {
	// RequireAlpha selects whether the chosen config must carry an 8-bit
	// alpha channel.
	RequireAlpha bool
	// SwapInterval is the eglSwapInterval value applied once the context
	// is current. 1 synchronizes buffer swaps with the display.
	SwapInterval int
}

// EGL enum values used in attribute lists.
const (
	SurfaceType          = 0x3033
	WindowBit            = 0x0004
	RenderableType       = 0x3040
	OpenGLES2Bit         = 0x0004
	RedSize              = 0x3024
	GreenSize            = 0x3023
	BlueSize             = 0x3022
	AlphaSize            = 0x3021
	ContextClientVersion = 0x3098
	None                 = 0x3038
)

// configAttributes builds the framebuffer attribute list: RGB888,
// window-drawable, GLES2-renderable. The alpha requirement is the single
// configuration point of the list.
func configAttributes(requireAlpha bool) []int32 {
	attribs := []int32{
		SurfaceType, WindowBit,
		RenderableType, OpenGLES2Bit,
		RedSize, 8,
		GreenSize, 8,
		BlueSize, 8,
	}
	if requireAlpha {
		attribs = append(attribs, AlphaSize, 8)
	}
	return append(attribs, None)
}

// contextAttributes requests a client API version 2 context.
func contextAttributes() []int32 {
	return []int32{ContextClientVersion, 2, None}
}
