//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/Swatkovich/cortexex-sub000/internal/adapter/connectrpc"
	"github.com/Swatkovich/cortexex-sub000/internal/adapter/repository"
	"github.com/Swatkovich/cortexex-sub000/internal/infrastructure/database"
	"github.com/Swatkovich/cortexex-sub000/internal/infrastructure/server"
	"github.com/Swatkovich/cortexex-sub000/internal/usecase"
)

var configSet = wire.NewSet(
	provideConfig,
)

var databaseSet = wire.NewSet(
	database.Open,
)

var repositorySet = wire.NewSet(
	repository.NewUserRepository,
	repository.NewThemeRepository,
	repository.NewQuestionRepository,
	repository.NewLanguageEntryRepository,
	repository.NewLedgerRepository,
	repository.NewSessionRepository,
	repository.NewStatsRepository,
)

var usecaseSet = wire.NewSet(
	usecase.NewUserUsecase,
	usecase.NewThemeUsecase,
	usecase.NewPlayUsecase,
	usecase.NewSessionUsecase,
	usecase.NewStatsUsecase,
)

var serviceSet = wire.NewSet(
	connectrpc.NewStatsServiceServer,
	connectrpc.NewPlayServiceServer,
	connectrpc.NewThemeServiceServer,
	connectrpc.NewUserServiceServer,
	wire.Struct(new(connectrpc.Services), "*"),
)

var serverSet = wire.NewSet(
	server.NewLogger,
	wire.Bind(new(logrus.FieldLogger), new(*logrus.Logger)),
	server.NewServer,
)

// Initialize builds the application container using Wire.
func Initialize(file ConfigFile, flags *pflag.FlagSet) (*Container, func(), error) {
	wire.Build(
		configSet,
		databaseSet,
		repositorySet,
		usecaseSet,
		serviceSet,
		serverSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil, nil
}
