package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	authsvc "github.com/casarancha/adminpanel/internal/services/auth"
)

const (
	sessionPrefix       = "admin_sessions:"
	adminSessionsPrefix = "admin_session_index:"
)

// SessionRepo persists admin sessions. Each session stores the backend
// bearer token obtained at login, so panel requests after a restart can
// keep talking to the platform API.
type SessionRepo struct {
	client *goredis.Client
}

func NewSessionRepo(client *goredis.Client) *SessionRepo {
	return &SessionRepo{client: client}
}

func (r *SessionRepo) Create(ctx context.Context, session authsvc.SessionRecord) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if strings.TrimSpace(session.SID) == "" || strings.TrimSpace(session.Email) == "" || strings.TrimSpace(session.BackendToken) == "" {
		return authsvc.ErrInvalidInput
	}

	ttl := ttlFor(session.ExpiresAt)
	fields := map[string]interface{}{
		"email":         session.Email,
		"backend_token": session.BackendToken,
		"expires_at":    session.ExpiresAt.Unix(),
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, sessionKey(session.SID), fields)
	pipe.Expire(ctx, sessionKey(session.SID), ttl)
	pipe.SAdd(ctx, adminSessionsKey(session.Email), session.SID)
	pipe.Expire(ctx, adminSessionsKey(session.Email), ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("create admin session: %w", err)
	}

	return nil
}

func (r *SessionRepo) Get(ctx context.Context, sid string) (authsvc.SessionRecord, error) {
	if r.client == nil {
		return authsvc.SessionRecord{}, fmt.Errorf("redis client is nil")
	}

	values, err := r.client.HGetAll(ctx, sessionKey(sid)).Result()
	if err != nil {
		return authsvc.SessionRecord{}, fmt.Errorf("get session hash: %w", err)
	}
	if len(values) == 0 {
		return authsvc.SessionRecord{}, authsvc.ErrSessionNotFound
	}

	session, err := parseSessionRecord(values)
	if err != nil {
		return authsvc.SessionRecord{}, err
	}
	session.SID = sid
	return session, nil
}

func (r *SessionRepo) Delete(ctx context.Context, sid string) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if strings.TrimSpace(sid) == "" {
		return nil
	}

	values, err := r.client.HGetAll(ctx, sessionKey(sid)).Result()
	if err != nil {
		return fmt.Errorf("load session for delete: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sessionKey(sid))
	if email := strings.TrimSpace(values["email"]); email != "" {
		pipe.SRem(ctx, adminSessionsKey(email), sid)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete admin session: %w", err)
	}

	return nil
}

// DeleteAllForEmail revokes every session of one admin account.
func (r *SessionRepo) DeleteAllForEmail(ctx context.Context, email string) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if strings.TrimSpace(email) == "" {
		return authsvc.ErrInvalidInput
	}

	sids, err := r.client.SMembers(ctx, adminSessionsKey(email)).Result()
	if err != nil {
		return fmt.Errorf("list admin sessions: %w", err)
	}

	for _, sid := range sids {
		if err := r.Delete(ctx, sid); err != nil {
			return err
		}
	}

	if err := r.client.Del(ctx, adminSessionsKey(email)).Err(); err != nil {
		return fmt.Errorf("delete admin session index: %w", err)
	}

	return nil
}

func parseSessionRecord(values map[string]string) (authsvc.SessionRecord, error) {
	email := strings.TrimSpace(values["email"])
	token := strings.TrimSpace(values["backend_token"])
	if email == "" || token == "" {
		return authsvc.SessionRecord{}, authsvc.ErrUnauthorized
	}

	expiresUnix, err := strconv.ParseInt(values["expires_at"], 10, 64)
	if err != nil {
		return authsvc.SessionRecord{}, authsvc.ErrUnauthorized
	}

	return authsvc.SessionRecord{
		Email:        email,
		BackendToken: token,
		ExpiresAt:    time.Unix(expiresUnix, 0).UTC(),
	}, nil
}

func ttlFor(expiresAt time.Time) time.Duration {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return time.Second
	}
	return ttl
}

func sessionKey(sid string) string {
	return sessionPrefix + sid
}

func adminSessionsKey(email string) string {
	return adminSessionsPrefix + strings.ToLower(strings.TrimSpace(email))
}
