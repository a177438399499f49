package enums

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

func ParseVerificationStatus(value string) (VerificationStatus, bool) {
	switch VerificationStatus(value) {
	case VerificationPending, VerificationApproved, VerificationRejected:
		return VerificationStatus(value), true
	default:
		return "", false
	}
}

// Terminal reports whether the request has been decided.
func (s VerificationStatus) Terminal() bool {
	return s == VerificationApproved || s == VerificationRejected
}
