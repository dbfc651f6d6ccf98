package controllers

import (
	"context"

	"go-shopcart/models"
	"go-shopcart/stores"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory store implementations mirroring the Mongo store semantics,
// used to exercise the handlers without a database.

type memoryUserStore struct {
	users map[primitive.ObjectID]models.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: map[primitive.ObjectID]models.User{}}
}

func (s *memoryUserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return models.User{}, stores.ErrDuplicateEmail
		}
	}
	user.ID = primitive.NewObjectID()
	s.users[user.ID] = user
	return user, nil
}

func (s *memoryUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return models.User{}, stores.ErrUserNotFound
	}
	return user, nil
}

func (s *memoryUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, stores.ErrUserNotFound
}

func (s *memoryUserStore) Update(ctx context.Context, user models.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return stores.ErrUserNotFound
	}
	s.users[user.ID] = user
	return nil
}

func (s *memoryUserStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := s.users[id]; !ok {
		return stores.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

type memoryProductStore struct {
	products map[primitive.ObjectID]models.Product
}

func newMemoryProductStore() *memoryProductStore {
	return &memoryProductStore{products: map[primitive.ObjectID]models.Product{}}
}

func (s *memoryProductStore) Create(ctx context.Context, product models.Product) (models.Product, error) {
	product.ID = primitive.NewObjectID()
	s.products[product.ID] = product
	return product, nil
}

func (s *memoryProductStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return models.Product{}, stores.ErrProductNotFound
	}
	return product, nil
}

func (s *memoryProductStore) FindAll(ctx context.Context) ([]models.Product, error) {
	all := []models.Product{}
	for _, product := range s.products {
		all = append(all, product)
	}
	return all, nil
}

func (s *memoryProductStore) FindBySeller(ctx context.Context, sellerID primitive.ObjectID) ([]models.Product, error) {
	owned := []models.Product{}
	for _, product := range s.products {
		if product.Seller == sellerID {
			owned = append(owned, product)
		}
	}
	return owned, nil
}

func (s *memoryProductStore) Update(ctx context.Context, product models.Product) error {
	if _, ok := s.products[product.ID]; !ok {
		return stores.ErrProductNotFound
	}
	s.products[product.ID] = product
	return nil
}

func (s *memoryProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := s.products[id]; !ok {
		return stores.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

type memoryCartStore struct {
	carts map[primitive.ObjectID]models.Cart
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{carts: map[primitive.ObjectID]models.Cart{}}
}

func (s *memoryCartStore) GetOrCreate(ctx context.Context, userID primitive.ObjectID) (models.Cart, error) {
	cart, ok := s.carts[userID]
	if !ok {
		cart = models.Cart{ID: primitive.NewObjectID(), UserID: userID, Products: []models.CartItem{}}
		s.carts[userID] = cart
	}
	return cart, nil
}

func (s *memoryCartStore) AddItem(ctx context.Context, userID primitive.ObjectID, item models.CartItem) error {
	cart, ok := s.carts[userID]
	if !ok {
		cart = models.Cart{ID: primitive.NewObjectID(), UserID: userID, Products: []models.CartItem{}}
	}
	cart.AddItem(item)
	s.carts[userID] = cart
	return nil
}

func (s *memoryCartStore) UpdateQuantity(ctx context.Context, userID, productID primitive.ObjectID, quantity int) error {
	cart, ok := s.carts[userID]
	if !ok {
		return stores.ErrCartNotFound
	}
	if !cart.UpdateQuantity(productID, quantity) {
		return stores.ErrItemNotFound
	}
	s.carts[userID] = cart
	return nil
}

func (s *memoryCartStore) RemoveItem(ctx context.Context, userID, productID primitive.ObjectID) error {
	cart, ok := s.carts[userID]
	if !ok {
		return stores.ErrCartNotFound
	}
	cart.RemoveItem(productID)
	s.carts[userID] = cart
	return nil
}

func (s *memoryCartStore) Clear(ctx context.Context, userID primitive.ObjectID) error {
	cart, ok := s.carts[userID]
	if !ok {
		cart = models.Cart{ID: primitive.NewObjectID(), UserID: userID}
	}
	cart.Clear()
	s.carts[userID] = cart
	return nil
}

func (s *memoryCartStore) Delete(ctx context.Context, userID primitive.ObjectID) error {
	delete(s.carts, userID)
	return nil
}
