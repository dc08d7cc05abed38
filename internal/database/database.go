package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"kampala_finance_backend/internal/config"
	"kampala_finance_backend/pkg/utils"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/spf13/afero"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OpenPostgres opens and pings a PostgreSQL connection pool.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	utils.LogInfo("Successfully connected to the database", map[string]interface{}{"driver": "postgres"})
	return db, nil
}

// ConnectMongo connects to MongoDB and returns the named database.
func ConnectMongo(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("error connecting to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("error pinging mongo: %w", err)
	}
	utils.LogInfo("Successfully connected to the database", map[string]interface{}{"driver": "mongo", "database": dbName})
	return client, client.Database(dbName), nil
}

// OpenSlot builds the slot selected by the storage configuration.
// The returned close function releases the underlying connection, if any.
func OpenSlot(ctx context.Context, cfg config.StorageConfig) (Slot, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case "", "file":
		slot, err := NewFileSlot(afero.NewOsFs(), cfg.Path, cfg.Key)
		if err != nil {
			return nil, nil, err
		}
		return slot, noop, nil

	case "memory":
		return NewMemorySlot(cfg.Key), noop, nil

	case "postgres":
		db, err := OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		slot := NewPostgresSlot(db, cfg.Key)
		if err := slot.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return slot, db.Close, nil

	case "mongo":
		client, mdb, err := ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		closer := func() error { return client.Disconnect(context.Background()) }
		return NewMongoSlot(mdb.Collection(slotTable), cfg.Key), closer, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
