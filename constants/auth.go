package constants

// Platform partitions the API surface. Each platform signs tokens with
// its own secret, so a token minted for one platform cannot be replayed
// against another.
type Platform int

const (
	PlatformDevice Platform = 1
	PlatformClient Platform = 2
	PlatformAdmin  Platform = 3
)

func (p Platform) String() string {
	switch p {
	case PlatformDevice:
		return "device"
	case PlatformClient:
		return "client"
	case PlatformAdmin:
		return "admin"
	}
	return "unknown"
}

// UserType is the category stored on the user row that drives platform
// access control.
type UserType int

const (
	UserTypeUser  UserType = 1
	UserTypeAdmin UserType = 2
)

// LoginAccess is the static platform allow-list keyed by user type.
var LoginAccess = map[UserType][]Platform{
	UserTypeUser:  {PlatformDevice, PlatformClient},
	UserTypeAdmin: {PlatformAdmin},
}

// CanAccessPlatform reports whether a user type may log in on the given
// platform.
func CanAccessPlatform(ut UserType, p Platform) bool {
	for _, allowed := range LoginAccess[ut] {
		if allowed == p {
			return true
		}
	}
	return false
}
