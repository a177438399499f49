package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/casarancha/adminpanel/internal/domain/enums"
	"github.com/casarancha/adminpanel/internal/domain/model"
	"github.com/casarancha/adminpanel/internal/domain/rules"
	"github.com/casarancha/adminpanel/internal/pkg/paging"
	"github.com/casarancha/adminpanel/internal/repo/backendhttp"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("user not found")
)

var statusActions = map[string]struct{}{
	"ban": {}, "unban": {},
	"suspend": {}, "unsuspend": {},
	"restrict": {}, "unrestrict": {},
	"verify": {}, "unverify": {},
}

type Store interface {
	List(ctx context.Context, params backendhttp.ListParams) ([]model.User, backendhttp.PageInfo, error)
	Get(ctx context.Context, userID string) (model.UserProfile, error)
	SetStatus(ctx context.Context, userID string, action string) error
}

// Page is the users table view model.
type Page struct {
	Users  []model.User
	Paging paging.Meta
}

// Service backs the user management screen. It keeps the last listed
// page in memory so status actions can return the patched row without a
// refetch.
type Service struct {
	store Store

	cacheMu sync.RWMutex
	cache   map[string]model.User
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		cache: make(map[string]model.User),
	}
}

func (s *Service) ListUsers(ctx context.Context, page int, search, status string) (Page, error) {
	if status != "" {
		if _, ok := enums.ParseUserStatus(status); !ok {
			return Page{}, ErrValidation
		}
	}
	if page < 1 {
		page = 1
	}

	users, info, err := s.store.List(ctx, backendhttp.ListParams{
		Page:   page,
		Limit:  paging.DefaultPageSize,
		Search: search,
		Status: status,
	})
	if err != nil {
		return Page{}, fmt.Errorf("list users: %w", err)
	}

	s.putCache(users)

	return Page{
		Users:  users,
		Paging: paging.MetaFor(page, paging.DefaultPageSize, info.Total),
	}, nil
}

func (s *Service) GetUser(ctx context.Context, userID string) (model.UserProfile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return model.UserProfile{}, ErrValidation
	}

	profile, err := s.store.Get(ctx, userID)
	if err != nil {
		if backendhttp.StatusOf(err) == 404 {
			return model.UserProfile{}, ErrNotFound
		}
		return model.UserProfile{}, fmt.Errorf("get user: %w", err)
	}
	return profile, nil
}

// ApplyAction runs a moderation action and returns the row as the table
// should now show it. The new status is derived locally so the screen
// updates without waiting for the next list fetch.
func (s *Service) ApplyAction(ctx context.Context, userID, action string) (model.User, error) {
	userID = strings.TrimSpace(userID)
	action = strings.ToLower(strings.TrimSpace(action))
	if userID == "" {
		return model.User{}, ErrValidation
	}
	if _, ok := statusActions[action]; !ok {
		return model.User{}, ErrValidation
	}

	if err := s.store.SetStatus(ctx, userID, action); err != nil {
		if backendhttp.StatusOf(err) == 404 {
			return model.User{}, ErrNotFound
		}
		return model.User{}, fmt.Errorf("set user status: %w", err)
	}

	user, ok := s.getCache(userID)
	if !ok {
		profile, err := s.store.Get(ctx, userID)
		if err != nil {
			return model.User{}, fmt.Errorf("reload user after action: %w", err)
		}
		user = profile.User
	}

	user.Status = rules.DeriveUserStatus(user.Status, action)
	user.Verified = rules.DeriveVerified(user.Verified, action)
	s.putCache([]model.User{user})

	return user, nil
}

func (s *Service) putCache(users []model.User) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	for _, user := range users {
		if user.ID != "" {
			s.cache[user.ID] = user
		}
	}
}

func (s *Service) getCache(userID string) (model.User, bool) {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()
	user, ok := s.cache[userID]
	return user, ok
}
