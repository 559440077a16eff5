package store

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Mongo is the remote backend over a MongoDB database with one collection
// per kind.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func (m *Mongo) Remote() bool { return true }

func (m *Mongo) Insert(ctx context.Context, kind string, record any) error {
	_, err := m.db.Collection(kind).InsertOne(ctx, record)
	return err
}

func (m *Mongo) Update(ctx context.Context, kind string, id, patch any) error {
	res, err := m.db.Collection(kind).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": patch})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) Delete(ctx context.Context, kind string, id any) error {
	res, err := m.db.Collection(kind).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) FetchAll(ctx context.Context, kind string, out any) error {
	cur, err := m.db.Collection(kind).Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (m *Mongo) FetchWhere(ctx context.Context, kind, field string, value any, out any) error {
	if field == "id" {
		field = "_id"
	}
	cur, err := m.db.Collection(kind).Find(ctx, bson.M{field: value})
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

// Watch opens a change stream on kind and invokes onChange for every event
// until ctx is cancelled. Stream errors end the watch with a warning; the
// pollers still refresh state on their own schedule.
func (m *Mongo) Watch(ctx context.Context, kind string, onChange func()) {
	go func() {
		stream, err := m.db.Collection(kind).Watch(ctx, mongo.Pipeline{})
		if err != nil {
			log.Printf("warn: change stream unavailable for %s: %v", kind, err)
			return
		}
		defer stream.Close(context.Background())
		for stream.Next(ctx) {
			onChange()
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			log.Printf("warn: change stream for %s ended: %v", kind, err)
		}
	}()
}
