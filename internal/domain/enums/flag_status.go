package enums

// FlagStatus is the dashboard-facing vocabulary for moderation queue
// entries. The platform backend reports "approved"/"removed" where the
// panel shows "reviewed"/"hidden"; the mapping lives here so no component
// compares raw backend strings.
type FlagStatus string

const (
	FlagStatusPending  FlagStatus = "pending"
	FlagStatusReviewed FlagStatus = "reviewed"
	FlagStatusHidden   FlagStatus = "hidden"
)

const (
	backendFlagApproved = "approved"
	backendFlagRemoved  = "removed"
)

func FlagStatusFromBackend(value string) FlagStatus {
	switch value {
	case backendFlagApproved:
		return FlagStatusReviewed
	case backendFlagRemoved:
		return FlagStatusHidden
	default:
		return FlagStatusPending
	}
}

func (s FlagStatus) BackendValue() string {
	switch s {
	case FlagStatusReviewed:
		return backendFlagApproved
	case FlagStatusHidden:
		return backendFlagRemoved
	default:
		return string(FlagStatusPending)
	}
}

// Terminal reports whether the flag can no longer be reviewed.
func (s FlagStatus) Terminal() bool {
	return s == FlagStatusReviewed || s == FlagStatusHidden
}

func ParseFlagStatus(value string) (FlagStatus, bool) {
	switch FlagStatus(value) {
	case FlagStatusPending, FlagStatusReviewed, FlagStatusHidden:
		return FlagStatus(value), true
	default:
		return "", false
	}
}
