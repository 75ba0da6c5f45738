package wayland

import "fmt"

// Role names a required global capability.
type Role string

const (
	// RoleCompositor is the surface-compositing authority.
	RoleCompositor Role = "wl_compositor"
	// RoleShell is the authority granting window semantics to a surface.
	RoleShell Role = "xdg_wm_base"
)

// MissingGlobalError reports a required global the compositor never
// advertised. There is no retry: the set of globals is fixed at compositor
// startup.
type MissingGlobalError struct {
	Role Role
}

func (e *MissingGlobalError) Error() string {
	return fmt.Sprintf("required global missing: %s", e.Role)
}
