// Package persistence selects the storage driver and provides the directories to fx.
package persistence

import (
	"log/slog"

	"buyhive/config"
	"buyhive/internal/domain/constants"
	"buyhive/internal/domain/repository"
	"buyhive/internal/infra/persistence/memory"
	"buyhive/internal/infra/persistence/mongodb"
	"buyhive/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the directories, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Repositories are the directories of the configured driver
type Repositories struct {
	fx.Out

	Users       repository.UserRepository
	Carts       repository.CartRepository
	Items       repository.ItemRepository
	Feedback    repository.FeedbackRepository
	Extractions repository.ExtractionRepository
}

// New builds the directories for storage.driver
func New(params Params) (Repositories, error) {
	driver := constants.StorageDriverMongo
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	params.Logger.Info("Initializing storage", slog.String("driver", driver))

	switch driver {
	case constants.StorageDriverMongo:
		db, err := mongodb.New(mongodb.Params{Lifecycle: params.Lc, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Users:       mongodb.NewUserRepository(db),
			Carts:       mongodb.NewCartRepository(db),
			Items:       mongodb.NewItemRepository(db),
			Feedback:    mongodb.NewFeedbackRepository(db),
			Extractions: mongodb.NewExtractionRepository(db),
		}, nil

	case constants.StorageDriverPostgres:
		if params.Config.Postgres == nil {
			return Repositories{}, errors.New("postgres configuration is required for the postgres driver")
		}
		db, err := postgres.New(postgres.Params{Lifecycle: params.Lc, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Users:       postgres.NewUserRepository(db),
			Carts:       postgres.NewCartRepository(db),
			Items:       postgres.NewItemRepository(db),
			Feedback:    postgres.NewFeedbackRepository(db),
			Extractions: postgres.NewExtractionRepository(db),
		}, nil

	case constants.StorageDriverMemory:
		store := memory.NewStore()

		return Repositories{
			Users:       memory.NewUserRepository(store),
			Carts:       memory.NewCartRepository(store),
			Items:       memory.NewItemRepository(store),
			Feedback:    memory.NewFeedbackRepository(store),
			Extractions: memory.NewExtractionRepository(store),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
