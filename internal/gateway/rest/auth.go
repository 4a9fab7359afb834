package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/recruitdesk/recruitdesk/internal/domain"
	"github.com/recruitdesk/recruitdesk/internal/gateway"
	"github.com/recruitdesk/recruitdesk/internal/transport"
)

const authBase = "/Auth"

var _ gateway.AuthGateway = (*authGateway)(nil)

type authGateway struct {
	client *transport.Client
}

// NewAuthGateway creates the REST implementation of the auth gateway.
func NewAuthGateway(client *transport.Client) gateway.AuthGateway {
	return &authGateway{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (g *authGateway) Login(ctx context.Context, email, password string) (domain.Session, error) {
	var dto sessionDTO
	err := g.client.Post(ctx, authBase+"/login", loginRequest{Email: email, Password: password}, &dto)
	if err != nil {
		if status := statusOf(err); status == http.StatusUnauthorized || status == http.StatusForbidden {
			return domain.Session{}, fmt.Errorf("login: %w", domain.ErrUnauthorized)
		}
		return domain.Session{}, err
	}
	session, err := toSession(dto)
	if err != nil {
		return domain.Session{}, fmt.Errorf("login response: %w", err)
	}
	return session, nil
}

func (g *authGateway) Register(ctx context.Context, req domain.RegisterRequest) (domain.Session, error) {
	var dto sessionDTO
	if err := g.client.Post(ctx, authBase+"/register", req, &dto); err != nil {
		return domain.Session{}, err
	}
	session, err := toSession(dto)
	if err != nil {
		return domain.Session{}, fmt.Errorf("register response: %w", err)
	}
	return session, nil
}
