package dto

import "github.com/casarancha/adminpanel/internal/domain/model"

type UserItem struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	Status        string `json:"status"`
	Verified      bool   `json:"verified"`
	PostsCount    int    `json:"posts_count"`
	CommentsCount int    `json:"comments_count"`
	JoinDate      string `json:"join_date"`
	GhostName     string `json:"ghost_name,omitempty"`
	School        string `json:"school,omitempty"`
	Work          string `json:"work,omitempty"`
}

func NewUserItem(user model.User) UserItem {
	return UserItem{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		PhoneNumber:   user.PhoneNumber,
		Status:        string(user.Status),
		Verified:      user.Verified,
		PostsCount:    user.PostsCount,
		CommentsCount: user.CommentsCount,
		JoinDate:      user.JoinDate,
		GhostName:     user.GhostName,
		School:        user.School,
		Work:          user.Work,
	}
}

type UsersListResponse struct {
	Users  []UserItem `json:"users"`
	Paging Paging     `json:"paging"`
}

type UserProfileResponse struct {
	UserItem
	Bio       string `json:"bio,omitempty"`
	LastSeen  string `json:"last_seen,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
}

func NewUserProfileResponse(profile model.UserProfile) UserProfileResponse {
	return UserProfileResponse{
		UserItem:  NewUserItem(profile.User),
		Bio:       profile.Bio,
		LastSeen:  profile.LastSeen,
		IPAddress: profile.IPAddress,
	}
}

type UserActionRequest struct {
	Action string `json:"action"`
}

type UserActionResponse struct {
	User UserItem `json:"user"`
}
