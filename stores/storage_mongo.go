package stores

import (
	"context"
	"errors"

	"shoplink/db"
	"shoplink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStorage backs the persistence port with the shared collections in db.
type MongoStorage struct{}

func NewMongoStorage() *MongoStorage {
	return &MongoStorage{}
}

func (s *MongoStorage) InsertStore(ctx context.Context, store models.Store) error {
	_, err := db.StoreCollection.InsertOne(ctx, store)
	return err
}

func (s *MongoStorage) FindStore(ctx context.Context, storeID string) (models.Store, error) {
	var store models.Store
	err := db.StoreCollection.FindOne(ctx, bson.M{"storeid": storeID}).Decode(&store)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Store{}, ErrNotFound
	}
	if err != nil {
		return models.Store{}, err
	}
	return store, nil
}

func (s *MongoStorage) UpdateStore(ctx context.Context, storeID string, fields map[string]any) error {
	res, err := db.StoreCollection.UpdateOne(ctx,
		bson.M{"storeid": storeID},
		bson.M{"$set": bson.M(fields)},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStorage) InsertProducts(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		docs = append(docs, p)
	}
	_, err := db.ProductCollection.InsertMany(ctx, docs)
	return err
}

func (s *MongoStorage) FindProductsByStore(ctx context.Context, storeID string) ([]models.Product, error) {
	cursor, err := db.ProductCollection.Find(ctx, bson.M{"storeid": storeID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *MongoStorage) FindProduct(ctx context.Context, storeID, productID string) (models.Product, error) {
	var product models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"storeid": storeID, "productid": productID}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *MongoStorage) UpdateProduct(ctx context.Context, storeID, productID string, fields map[string]any) error {
	res, err := db.ProductCollection.UpdateOne(ctx,
		bson.M{"storeid": storeID, "productid": productID},
		bson.M{"$set": bson.M(fields)},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (s *MongoStorage) DeleteProduct(ctx context.Context, storeID, productID string) error {
	res, err := db.ProductCollection.DeleteOne(ctx, bson.M{"storeid": storeID, "productid": productID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (s *MongoStorage) InsertConnection(ctx context.Context, conn models.ImportConnection) error {
	_, err := db.ConnectionCollection.InsertOne(ctx, conn)
	return err
}
