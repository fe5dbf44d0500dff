package storage

import (
	"context"
	"errors"
	"log"

	"foodrun/model"
	"foodrun/storage-svc/internal/service"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalog keeps restaurants and foods as documents keyed by their id.
type MongoCatalog struct {
	DB *mongo.Database
}

func NewMongoCatalog(db *mongo.Database) *MongoCatalog {
	return &MongoCatalog{DB: db}
}

var _ service.CatalogRepository = (*MongoCatalog)(nil)

func (c *MongoCatalog) restaurants() *mongo.Collection {
	return c.DB.Collection(service.RestaurantsCollection)
}

func (c *MongoCatalog) foods() *mongo.Collection {
	return c.DB.Collection(service.FoodsCollection)
}

func (c *MongoCatalog) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	cursor, err := c.restaurants().Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	restaurants := []model.Restaurant{}
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (c *MongoCatalog) GetRestaurant(ctx context.Context, id string) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := c.restaurants().FindOne(ctx, bson.M{"_id": id}).Decode(&restaurant); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

func (c *MongoCatalog) InsertRestaurant(ctx context.Context, restaurant *model.Restaurant) error {
	_, err := c.restaurants().InsertOne(ctx, restaurant)
	return err
}

func (c *MongoCatalog) ListFoods(ctx context.Context) ([]model.Food, error) {
	return c.findFoods(ctx, bson.M{})
}

func (c *MongoCatalog) FoodsByIDs(ctx context.Context, ids []string) ([]model.Food, error) {
	if len(ids) == 0 {
		return []model.Food{}, nil
	}
	return c.findFoods(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (c *MongoCatalog) findFoods(ctx context.Context, filter bson.M) ([]model.Food, error) {
	cursor, err := c.foods().Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	foods := []model.Food{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (c *MongoCatalog) GetFood(ctx context.Context, id string) (*model.Food, error) {
	var food model.Food
	if err := c.foods().FindOne(ctx, bson.M{"_id": id}).Decode(&food); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &food, nil
}

func (c *MongoCatalog) InsertFood(ctx context.Context, food *model.Food) error {
	_, err := c.foods().InsertOne(ctx, food)
	return err
}

// Changes opens a change stream over the named collections and signals once
// per change event. The stream is closed when ctx is done.
func (c *MongoCatalog) Changes(ctx context.Context, collections ...string) (<-chan struct{}, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "ns.coll", Value: bson.D{{Key: "$in", Value: collections}}}}}},
	}
	changeStream, err := c.DB.Watch(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	signals := make(chan struct{}, 1)
	go func() {
		defer close(signals)
		defer changeStream.Close(context.Background())
		for changeStream.Next(ctx) {
			select {
			case signals <- struct{}{}:
			default:
			}
		}
		if err := changeStream.Err(); err != nil && ctx.Err() == nil {
			log.Printf("Warning: catalog change stream ended: %v", err)
		}
	}()
	return signals, nil
}
