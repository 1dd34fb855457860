// Package mongodb implements the document store directories on MongoDB.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"buyhive/config"
	"buyhive/internal/domain/lifecycle"
	"buyhive/internal/errors"

	"go.mongodb.org/mongo-driver/v2/event"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/fx"
)

const (
	defaultDatabase       = "buyhive"
	defaultConnectTimeout = 10 * time.Second
	slowCommandThreshold  = 200 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and returns the application database
func New(params Params) (*mongo.Database, error) {
	mongoCfg := params.Config.Storage.Mongo
	if mongoCfg == nil || mongoCfg.URI == "" {
		return nil, errors.New("storage.mongo.uri is required for the mongo driver")
	}

	opts := options.Client().
		ApplyURI(mongoCfg.URI).
		SetMonitor(newCommandMonitor(params.Logger)).
		SetPoolMonitor(newPoolMonitor(params.Logger))

	if mongoCfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(mongoCfg.MaxPoolSize)
	}
	if mongoCfg.MinPoolSize > 0 {
		opts.SetMinPoolSize(mongoCfg.MinPoolSize)
	}
	connectTimeout := mongoCfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}
	opts.SetConnectTimeout(connectTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	dbName := mongoCfg.Database
	if dbName == "" {
		dbName = defaultDatabase
	}
	db := client.Database(dbName)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if params.Config.Storage.AutoMigrate {
				if err := EnsureIndexes(ctx, db); err != nil {
					return err
				}
				params.Logger.Info("MongoDB indexes ensured", slog.String("database", dbName))
			}

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

func newCommandMonitor(logger *slog.Logger) *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(ctx context.Context, evt *event.CommandSucceededEvent) {
			if evt.Duration < slowCommandThreshold {
				return
			}
			logger.LogAttrs(ctx, slog.LevelWarn, "MongoDB slow command",
				slog.String("command", evt.CommandName),
				slog.String("database", evt.DatabaseName),
				slog.Duration("elapsed", evt.Duration),
			)
		},
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			logger.LogAttrs(ctx, slog.LevelError, "MongoDB command failed",
				slog.String("command", evt.CommandName),
				slog.String("database", evt.DatabaseName),
				slog.Duration("elapsed", evt.Duration),
				slog.Any("error", evt.Failure),
			)
		},
	}
}

func newPoolMonitor(logger *slog.Logger) *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			if evt.Type != event.ConnectionCheckOutFailed {
				return
			}
			logger.Warn("MongoDB connection checkout failed",
				slog.String("address", evt.Address),
				slog.String("reason", evt.Reason),
			)
		},
	}
}
