//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/JuanSebastianGarcia23/calzado/infrastructure/config"

	"github.com/google/wire"
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
