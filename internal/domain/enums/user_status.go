package enums

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

func ParseUserStatus(value string) (UserStatus, bool) {
	switch UserStatus(value) {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return UserStatus(value), true
	default:
		return "", false
	}
}
