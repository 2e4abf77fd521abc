package host

import (
	"strings"

	"shutter/internal/camera"
	"shutter/internal/config"
)

// ParseAuthorization maps a configured library authorization onto the
// plugin's status. Unknown values are treated as not yet determined.
func ParseAuthorization(value string) camera.AuthorizationStatus {
	canonical, _ := config.ParseAuthorization(value)
	switch canonical {
	case "authorized":
		return camera.AuthorizationAuthorized
	case "limited":
		return camera.AuthorizationLimited
	case "denied":
		return camera.AuthorizationDenied
	case "restricted":
		return camera.AuthorizationRestricted
	default:
		return camera.AuthorizationNotDetermined
	}
}

// ParseSource maps a --source flag onto a preset choice. Empty means ask.
func ParseSource(value string) (camera.Source, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "library", "photos":
		return camera.SourceLibrary, true
	case "camera", "live":
		return camera.SourceCamera, true
	case "cancel":
		return camera.SourceCancel, true
	default:
		return camera.SourceCancel, false
	}
}
