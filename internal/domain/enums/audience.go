package enums

// Audience selects who a broadcast notification targets. Group and user
// audiences additionally require a target id.
type Audience string

const (
	AudienceAll      Audience = "all"
	AudienceVerified Audience = "verified"
	AudienceActive   Audience = "active"
	AudienceGroup    Audience = "group"
	AudienceUser     Audience = "user"
)

func ParseAudience(value string) (Audience, bool) {
	switch Audience(value) {
	case AudienceAll, AudienceVerified, AudienceActive, AudienceGroup, AudienceUser:
		return Audience(value), true
	default:
		return "", false
	}
}

// NeedsTarget reports whether the audience requires a group or user id.
func (a Audience) NeedsTarget() bool {
	return a == AudienceGroup || a == AudienceUser
}
