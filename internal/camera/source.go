package camera

type Source int

const (
	SourceCancel Source = iota
	SourceLibrary
	SourceCamera
)

func (s Source) String() string {
	switch s {
	case SourceLibrary:
		return "library"
	case SourceCamera:
		return "camera"
	default:
		return "cancel"
	}
}

// AuthorizationStatus mirrors the platform's photo library authorization states.
type AuthorizationStatus int

const (
	AuthorizationNotDetermined AuthorizationStatus = iota
	AuthorizationRestricted
	AuthorizationDenied
	AuthorizationAuthorized
	AuthorizationLimited
)

func (a AuthorizationStatus) String() string {
	switch a {
	case AuthorizationRestricted:
		return "restricted"
	case AuthorizationDenied:
		return "denied"
	case AuthorizationAuthorized:
		return "authorized"
	case AuthorizationLimited:
		return "limited"
	default:
		return "notDetermined"
	}
}

// Choice is one entry of the source sheet.
type Choice struct {
	Title  string
	Source Source
}

// SourceChoices is the sheet offered to the user, cancel last.
var SourceChoices = []Choice{
	{Title: "From Photos", Source: SourceLibrary},
	{Title: "Take Picture", Source: SourceCamera},
	{Title: "Cancel", Source: SourceCancel},
}

// validateSource checks that the chosen source can be presented. Cancel is
// handled by the caller before this runs.
func validateSource(src Source, host Host) error {
	switch src {
	case SourceLibrary:
		switch host.LibraryAuthorization() {
		case AuthorizationRestricted, AuthorizationDenied:
			return ErrLibraryDenied
		}
		return nil
	case SourceCamera:
		if !host.LiveCaptureAvailable() {
			return ErrCameraUnavailable
		}
		return nil
	default:
		return ErrCancelled
	}
}
