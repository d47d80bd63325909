package repository

import (
	"context"
	"time"

	"github.com/scriblr/blog-service/internal/post"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on a MongoDB collection. Posts are keyed by a
// string "id" field (hex ObjectID assigned at insert) with a unique index,
// independent of Mongo's own _id.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(col *mongo.Collection) *MongoStore {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idx)
	return &MongoStore{col: col}
}

func (m *MongoStore) Insert(ctx context.Context, p *post.Post) (*post.Post, error) {
	p.ID = primitive.NewObjectID().Hex()
	p.Created = time.Now()
	if _, err := m.col.InsertOne(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (m *MongoStore) FindByID(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	err := m.col.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (m *MongoStore) FindOne(ctx context.Context) (*post.Post, error) {
	var p post.Post
	err := m.col.FindOne(ctx, bson.M{}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (m *MongoStore) FindAll(ctx context.Context) ([]*post.Post, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*post.Post{}
	for cur.Next(ctx) {
		var p post.Post
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (m *MongoStore) Count(ctx context.Context) (int64, error) {
	return m.col.CountDocuments(ctx, bson.M{})
}

func (m *MongoStore) UpdateByID(ctx context.Context, id string, u Update) error {
	set := bson.M{}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Content != nil {
		set["content"] = *u.Content
	}
	if u.Author != nil {
		set["author"] = *u.Author
	}
	if len(set) == 0 {
		// nothing to apply; still report unknown ids
		_, err := m.FindByID(ctx, id)
		return err
	}
	res, err := m.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoStore) DeleteByID(ctx context.Context, id string) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
