package service

import (
	"context"

	"github.com/MKhiriev/go-auth-form/internal/adapter"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/internal/store"
)

type ClientServices struct {
	AuthService ClientAuthService
}

func NewClientServices(ctx context.Context, localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(ctx, localStore.SessionRepository, serverAdapter, log.GetChildLogger("auth")),
	}
}
