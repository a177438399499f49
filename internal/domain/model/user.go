package model

import "github.com/casarancha/adminpanel/internal/domain/enums"

// User is the panel's view of a platform account. Dates are already
// normalized to calendar-date strings by the API client layer.
type User struct {
	ID            string
	Username      string
	Email         string
	PhoneNumber   string
	Status        enums.UserStatus
	Verified      bool
	PostsCount    int
	CommentsCount int
	JoinDate      string
	GhostName     string
	School        string
	Work          string
}

// UserProfile is the detail-panel payload; it extends the list row with
// fields only the profile endpoint returns.
type UserProfile struct {
	User
	Bio       string
	LastSeen  string
	IPAddress string
}
