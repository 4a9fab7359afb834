package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/recruitdesk/recruitdesk/internal/domain"
	"github.com/recruitdesk/recruitdesk/internal/gateway"
	"github.com/recruitdesk/recruitdesk/internal/transport"
)

const usersBase = "/admin/Users"

var _ gateway.UserGateway = (*userGateway)(nil)

type userGateway struct {
	client *transport.Client
}

// NewUserGateway creates the REST implementation of the user gateway.
func NewUserGateway(client *transport.Client) gateway.UserGateway {
	return &userGateway{client: client}
}

func (g *userGateway) List(ctx context.Context) ([]domain.User, error) {
	var dtos []userDTO
	if err := g.client.Get(ctx, usersBase, &dtos); err != nil {
		return nil, err
	}
	return toUsers(dtos)
}

func (g *userGateway) Create(ctx context.Context, req domain.CreateUserRequest) (domain.User, error) {
	var dto userDTO
	if err := g.client.Post(ctx, usersBase, req, &dto); err != nil {
		return domain.User{}, err
	}
	return toUser(dto)
}

func (g *userGateway) Update(ctx context.Context, id int64, req domain.UpdateUserRequest) (domain.User, error) {
	var dto userDTO
	err := g.client.Put(ctx, fmt.Sprintf("%s/%d", usersBase, id), req, &dto)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return domain.User{}, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
		}
		return domain.User{}, err
	}
	return toUser(dto)
}

func (g *userGateway) Delete(ctx context.Context, id int64) error {
	if err := g.client.Delete(ctx, fmt.Sprintf("%s/%d", usersBase, id)); err != nil {
		if statusOf(err) == http.StatusNotFound {
			return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
		}
		return err
	}
	return nil
}
