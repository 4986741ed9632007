// Package database opens the configured document store and exposes the
// entity repositories backed by it.
package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"messageboard/internal/config"
	"messageboard/internal/models"
	"messageboard/internal/repositories"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Collection names used by the MongoDB driver.
const (
	MessagesCollection = "messages"
	UsersCollection    = "users"
)

// Store groups the repositories of one open database together with its
// lifecycle. Each Store owns its connection; there is no shared registry.
type Store struct {
	Messages repositories.MessageRepository
	Users    repositories.UserRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Open connects to the store selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongoDB:
		return OpenMongo(ctx, cfg.MongoURI, cfg.DatabaseName)
	case config.DriverSQLite:
		return OpenGORM(sqlite.Open(cfg.DatabaseDSN))
	case config.DriverPostgres:
		return OpenGORM(postgres.Open(cfg.DatabaseDSN))
	case config.DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// OpenMongo connects to MongoDB and verifies the connection with a ping.
func OpenMongo(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	log.Printf("Connected to MongoDB database %s", dbName)

	db := client.Database(dbName)
	return &Store{
		Messages: repositories.NewMongoMessageRepository(db, MessagesCollection),
		Users:    repositories.NewMongoUserRepository(db, UsersCollection),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		close: client.Disconnect,
	}, nil
}

// OpenGORM opens a relational database through GORM and migrates the schema.
func OpenGORM(dialector gorm.Dialector) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true, // Lookups of absent IDs are expected
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Message{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	log.Printf("Connected to %s database", dialector.Name())

	return &Store{
		Messages: repositories.NewGORMMessageRepository(db),
		Users:    repositories.NewGORMUserRepository(db),
		ping:     sqlDB.PingContext,
		close: func(context.Context) error {
			return sqlDB.Close()
		},
	}, nil
}

// NewMemory returns a Store that keeps everything in process memory.
func NewMemory() *Store {
	return &Store{
		Messages: repositories.NewMemoryMessageRepository(),
		Users:    repositories.NewMemoryUserRepository(),
		ping:     func(context.Context) error { return nil },
		close:    func(context.Context) error { return nil },
	}
}

// Ping checks that the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close releases the underlying connection.
func (s *Store) Close(ctx context.Context) error {
	return s.close(ctx)
}
