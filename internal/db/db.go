package db

import (
	"context"
	"time"

	"badgeofshame/internal/env"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Ctx = context.Background()
var RDB *redis.Client
var Client *mongo.Client

var Events *mongo.Collection
var Operators *mongo.Collection

// InitDB connects to MongoDB when a URI is configured. Without one the
// collections stay nil and audit events and operator login are disabled.
func InitDB(cfg env.Mongo) error {
	if cfg.URI == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(Ctx, 10*time.Second)
	defer cancel()

	var err error
	Client, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return errors.Wrap(err, "connecting to MongoDB")
	}

	if err = Client.Ping(ctx, nil); err != nil {
		return errors.Wrap(err, "pinging MongoDB")
	}

	// loading collections
	Events = GetCollection(cfg.Database, "events", Client)
	Operators = GetCollection(cfg.Database, "operators", Client)

	return nil
}

func GetCollection(database string, collectionName string, client *mongo.Client) *mongo.Collection {
	return client.Database(database).Collection(collectionName)
}

// InitCache connects the shared Redis client used by the redis cache driver.
func InitCache(cfg env.Cache) error {
	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := RDB.Ping(Ctx).Err(); err != nil {
		return errors.Wrapf(err, "pinging Redis at %s", cfg.RedisAddr)
	}

	return nil
}

// Close releases whichever connections were opened.
func Close() {
	if RDB != nil {
		_ = RDB.Close()
	}
	if Client != nil {
		_ = Client.Disconnect(Ctx)
	}
}
