package enums

type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

func ParseCampaignStatus(value string) (CampaignStatus, bool) {
	switch CampaignStatus(value) {
	case CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return CampaignStatus(value), true
	default:
		return "", false
	}
}

type CampaignType string

const (
	CampaignTypeEngagement CampaignType = "engagement"
	CampaignTypePosts      CampaignType = "posts"
	CampaignTypeComments   CampaignType = "comments"
)

func ParseCampaignType(value string) (CampaignType, bool) {
	switch CampaignType(value) {
	case CampaignTypeEngagement, CampaignTypePosts, CampaignTypeComments:
		return CampaignType(value), true
	default:
		return "", false
	}
}

// Label is the display name the panel shows for a campaign type.
func (t CampaignType) Label() string {
	switch t {
	case CampaignTypeEngagement:
		return "Engagement Booster"
	case CampaignTypePosts:
		return "Content Seeding"
	case CampaignTypeComments:
		return "Comment Catalyst"
	default:
		return string(t)
	}
}
