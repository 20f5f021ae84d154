package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PreferencesCollection is the collection name used for device preferences.
const PreferencesCollection = "preferences"

// ConnectMongo connects to MongoDB and verifies the connection with a ping.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo uri is empty")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	// Ping to verify connection
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

type preference struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoPreferences stores key-value preferences, one document per key.
type MongoPreferences struct {
	Collection *mongo.Collection
}

// NewMongoPreferences wraps the preferences collection of database.
func NewMongoPreferences(client *mongo.Client, database string) *MongoPreferences {
	return &MongoPreferences{Collection: client.Database(database).Collection(PreferencesCollection)}
}

// Get finds a preference by key.
func (p *MongoPreferences) Get(ctx context.Context, key string) (string, bool, error) {
	if p.Collection == nil {
		return "", false, fmt.Errorf("mongo collection is nil")
	}
	var doc preference
	err := p.Collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, err
	}
	return doc.Value, true, nil
}

// Set upserts a preference.
func (p *MongoPreferences) Set(ctx context.Context, key, value string) error {
	if p.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	_, err := p.Collection.UpdateOne(
		ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value, "updated_at": time.Now()}},
		options.Update().SetUpsert(true),
	)
	return err
}
