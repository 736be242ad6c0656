package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ErrUnavailable is returned when an operation needs the document store
// but no store was configured or reachable at startup.
var ErrUnavailable = errors.New("document store unavailable")

// Store is the document store contract. Records are grouped into
// collections named by kind; ids are assigned by the store on insert.
// GetDocuments returns raw documents in store-default order.
type Store interface {
	CreateDocument(ctx context.Context, kind string, doc interface{}) (string, error)
	GetDocuments(ctx context.Context, kind string, filter bson.M, limit int64) ([]bson.M, error)
	ListCollectionNames(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

// Mongo implements Store on a MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

// Connect creates a Mongo store and verifies reachability with a single ping.
// No retries; a failed connect leaves the caller with a nil Store.
func Connect(ctx context.Context, uri, name string, logger *zap.Logger) (*Mongo, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	logger.Info("document store connected", zap.String("database", name))
	return &Mongo{client: client, db: client.Database(name), logger: logger}, nil
}

// CreateDocument inserts doc into the collection named kind and returns the
// assigned id as a hex string.
func (m *Mongo) CreateDocument(ctx context.Context, kind string, doc interface{}) (string, error) {
	res, err := m.db.Collection(kind).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", kind, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

// GetDocuments returns up to limit raw documents from the collection named
// kind matching filter. An empty filter matches everything. No sort is
// applied; order is whatever the store yields.
func (m *Mongo) GetDocuments(ctx context.Context, kind string, filter bson.M, limit int64) ([]bson.M, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := m.db.Collection(kind).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", kind, err)
	}
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	return docs, nil
}

// ListCollectionNames returns the collection names of the database.
func (m *Mongo) ListCollectionNames(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.D{})
}

// Ping checks reachability of the store.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
