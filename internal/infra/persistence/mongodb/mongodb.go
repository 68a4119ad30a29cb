// Package mongodb contains the concrete implementation of the persistence layer using MongoDB.
package mongodb

import (
	"context"
	"log/slog"

	"bookstore/config"
	"bookstore/internal/domain/lifecycle"
	"bookstore/internal/errors"
	"bookstore/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and registers connect/disconnect hooks.
func New(params Params) (*mongo.Client, error) {
	mongoCfg := params.Config.Mongo
	if mongoCfg == nil || mongoCfg.URI == "" {
		return nil, errors.New("mongo uri must be provided")
	}

	clientOpts := options.Client().
		ApplyURI(mongoCfg.URI).
		SetConnectTimeout(mongoCfg.ConnectTimeout).
		SetMonitor(newCommandMonitor(params.Logger, params.Config))

	client, err := mongo.Connect(context.Background(), clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, client.Database(mongoCfg.Database)); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB", slog.String("database", mongoCfg.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return errors.WithStack(client.Disconnect(stopCtx))
		},
	})

	return client, nil
}

// NewDatabase selects the configured database on the client.
func NewDatabase(client *mongo.Client, cfg *config.Config) *mongo.Database {
	return client.Database(cfg.Mongo.Database)
}

// EnsureIndexes creates the indexes the repositories rely on. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(model.UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create users email index")
	}

	return nil
}
