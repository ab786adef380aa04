package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/04yashgautam/adverai/internal/models"
)

// Mongo reads campaign-stats documents. The client is owned by the server
// bootstrap; this type only issues reads and never reconnects.
type Mongo struct {
	coll *mongo.Collection
}

func NewMongo(client *mongo.Client, db, coll string) *Mongo {
	return &Mongo{coll: client.Database(db).Collection(coll)}
}

// Connect dials the store and verifies it with a ping. Lifecycle (Disconnect)
// belongs to the caller.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// FindRows returns documents matching the date literal, or every document
// when date is empty. The Mongo identity field is excluded.
func (m *Mongo) FindRows(ctx context.Context, date string) ([]models.Row, error) {
	filter := bson.M{}
	if date != "" {
		filter["date"] = date
	}
	opts := options.Find().SetProjection(bson.M{"_id": 0})
	cur, err := m.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var rows []models.Row
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ImpressionHistory projects date and impressions across the whole
// collection, unfiltered; it feeds the line-chart aggregation.
func (m *Mongo) ImpressionHistory(ctx context.Context) ([]models.Row, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0, "date": 1, "impressions": 1})
	cur, err := m.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var rows []models.Row
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
