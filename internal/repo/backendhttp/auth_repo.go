package backendhttp

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

type AuthRepo struct {
	client *Client
}

func NewAuthRepo(client *Client) *AuthRepo {
	return &AuthRepo{client: client}
}

// Login exchanges admin credentials for a backend bearer token. The
// backend owns credential checks; this repo only relays them.
func (r *AuthRepo) Login(ctx context.Context, email, password string) (string, error) {
	request := map[string]string{
		"email":    strings.TrimSpace(email),
		"password": password,
	}

	response := loginResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodPost, "/auth/login", nil, request, &response); err != nil {
		return "", err
	}

	token := strings.TrimSpace(response.Token)
	if token == "" {
		token = strings.TrimSpace(response.Data.Token)
	}
	if token == "" {
		return "", &RequestError{
			Op:  "decode login response",
			Err: errors.New("missing token"),
		}
	}
	return token, nil
}

type loginResponseDTO struct {
	Token string `json:"token"`
	Data  struct {
		Token string `json:"token"`
	} `json:"data"`
}
