package enums

type GhostNameStatus string

const (
	GhostNameAvailable  GhostNameStatus = "available"
	GhostNameReserved   GhostNameStatus = "reserved"
	GhostNameRestricted GhostNameStatus = "restricted"
)

func ParseGhostNameStatus(value string) (GhostNameStatus, bool) {
	switch GhostNameStatus(value) {
	case GhostNameAvailable, GhostNameReserved, GhostNameRestricted:
		return GhostNameStatus(value), true
	default:
		return "", false
	}
}
