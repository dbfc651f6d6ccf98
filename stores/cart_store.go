package stores

import (
	"context"
	"errors"

	"go-shopcart/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCartStore persists carts in the "carts" collection. Mutations
// are plain read-modify-write with no revision check: two concurrent
// mutations of the same cart can lose one of the updates.
type MongoCartStore struct {
	collection *mongo.Collection
}

// NewMongoCartStore creates a cart store backed by the given database
func NewMongoCartStore(db *mongo.Database) *MongoCartStore {
	return &MongoCartStore{collection: db.Collection("carts")}
}

func (s *MongoCartStore) find(ctx context.Context, userID primitive.ObjectID) (models.Cart, error) {
	var cart models.Cart
	err := s.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Cart{}, ErrCartNotFound
	}
	return cart, err
}

func (s *MongoCartStore) save(ctx context.Context, cart models.Cart) error {
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": cart.ID},
		bson.M{"$set": bson.M{"products": cart.Products}})
	return err
}

// GetOrCreate fetches the user's cart; a missing cart is created empty
func (s *MongoCartStore) GetOrCreate(ctx context.Context, userID primitive.ObjectID) (models.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	cart, err := s.find(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, ErrCartNotFound) {
		return models.Cart{}, err
	}

	cart = models.Cart{UserID: userID, Products: []models.CartItem{}}
	result, err := s.collection.InsertOne(ctx, cart)
	if err != nil {
		return models.Cart{}, err
	}
	cart.ID = result.InsertedID.(primitive.ObjectID)
	return cart, nil
}

// AddItem merges the snapshot item into the user's cart
func (s *MongoCartStore) AddItem(ctx context.Context, userID primitive.ObjectID, item models.CartItem) error {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	cart, err := s.find(ctx, userID)
	if errors.Is(err, ErrCartNotFound) {
		cart = models.Cart{UserID: userID, Products: []models.CartItem{item}}
		_, err = s.collection.InsertOne(ctx, cart)
		return err
	}
	if err != nil {
		return err
	}

	cart.AddItem(item)
	return s.save(ctx, cart)
}

// UpdateQuantity replaces the quantity of an existing line verbatim
func (s *MongoCartStore) UpdateQuantity(ctx context.Context, userID, productID primitive.ObjectID, quantity int) error {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	cart, err := s.find(ctx, userID)
	if err != nil {
		return err
	}
	if !cart.UpdateQuantity(productID, quantity) {
		return ErrItemNotFound
	}
	return s.save(ctx, cart)
}

// RemoveItem drops the line for productID, ignoring absent lines
func (s *MongoCartStore) RemoveItem(ctx context.Context, userID, productID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	cart, err := s.find(ctx, userID)
	if err != nil {
		return err
	}
	cart.RemoveItem(productID)
	return s.save(ctx, cart)
}

// Clear empties the user's cart, upserting an empty one if absent
func (s *MongoCartStore) Clear(ctx context.Context, userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	_, err := s.collection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"products": []models.CartItem{}}},
		options.Update().SetUpsert(true))
	return err
}

// Delete removes the user's cart document, ignoring a missing cart
func (s *MongoCartStore) Delete(ctx context.Context, userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	_, err := s.collection.DeleteOne(ctx, bson.M{"user_id": userID})
	return err
}
