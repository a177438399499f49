package rules

import "github.com/casarancha/adminpanel/internal/domain/enums"

// DeriveUserStatus returns the status a profile ends up in after a
// moderation action. Unknown actions leave the status unchanged.
func DeriveUserStatus(current enums.UserStatus, action string) enums.UserStatus {
	switch action {
	case "ban", "suspend":
		return enums.UserStatusSuspended
	case "restrict":
		return enums.UserStatusInactive
	case "unban", "unsuspend", "unrestrict":
		return enums.UserStatusActive
	default:
		return current
	}
}

// DeriveVerified returns the verified flag after an action. Actions that
// do not touch verification leave the flag as is.
func DeriveVerified(current bool, action string) bool {
	switch action {
	case "verify":
		return true
	case "unverify":
		return false
	default:
		return current
	}
}
