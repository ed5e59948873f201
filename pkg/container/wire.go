//go:build wireinject
// +build wireinject

package container

import (
	"github.com/google/wire"
	"github.com/mnikita/scenario-worker/pkg/common"
)

func InitializeContainer(config *Configuration, registry *common.Registry) (*Container, error) {
	wire.Build(WireSet)

	return &Container{}, nil
}
