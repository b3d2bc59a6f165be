package app

import (
	"entgo.io/ent/dialect"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/Swatkovich/cortexex-sub000/internal/infrastructure/config"
	"github.com/Swatkovich/cortexex-sub000/internal/infrastructure/server"
	"github.com/Swatkovich/cortexex-sub000/internal/usecase"
)

// ConfigFile is the optional path passed with --config.
type ConfigFile string

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Driver dialect.Driver
	Server *server.Server
	Users  usecase.UserUsecase
	Stats  usecase.StatsUsecase
}

func provideConfig(file ConfigFile, flags *pflag.FlagSet) (*config.Config, error) {
	return config.Load(string(file), flags)
}
