package stores

import (
	"context"
	"errors"
	"time"

	"go-shopcart/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProductStore persists products in the "products" collection
type MongoProductStore struct {
	collection *mongo.Collection
}

// NewMongoProductStore creates a product store backed by the given database
func NewMongoProductStore(db *mongo.Database) *MongoProductStore {
	return &MongoProductStore{collection: db.Collection("products")}
}

func (s *MongoProductStore) Create(ctx context.Context, product models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	result, err := s.collection.InsertOne(ctx, product)
	if err != nil {
		return models.Product{}, err
	}
	product.ID = result.InsertedID.(primitive.ObjectID)
	return product, nil
}

func (s *MongoProductStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	var product models.Product
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrProductNotFound
	}
	return product, err
}

func (s *MongoProductStore) FindAll(ctx context.Context) ([]models.Product, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoProductStore) FindBySeller(ctx context.Context, sellerID primitive.ObjectID) ([]models.Product, error) {
	return s.find(ctx, bson.M{"seller": sellerID})
}

func (s *MongoProductStore) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *MongoProductStore) Update(ctx context.Context, product models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	product.UpdatedAt = time.Now()
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (s *MongoProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}
