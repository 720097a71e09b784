package repository

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"stayease-backend/domain"
)

type MongoSavedItemRepo struct {
	collection *mongo.Collection
	ctx        context.Context
	logger     *logrus.Logger
}

func NewMongoSavedItemRepo(collection *mongo.Collection, ctx context.Context, logger *logrus.Logger) *MongoSavedItemRepo {
	return &MongoSavedItemRepo{collection, ctx, logger}
}

func (r *MongoSavedItemRepo) Insert(item *domain.SavedItem) error {
	_, err := r.collection.InsertOne(r.ctx, item)
	if err != nil {
		r.logger.Error("Database exception: ", err)
	}
	return err
}

func (r *MongoSavedItemRepo) Find(ownerUserID string, entityID string) (*domain.SavedItem, error) {
	var item domain.SavedItem

	query := bson.M{"ownerUserId": ownerUserID, "entity.id": entityID}
	err := r.collection.FindOne(r.ctx, query).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound()
		}
		return nil, err
	}
	return &item, nil
}

func (r *MongoSavedItemRepo) ListByOwner(ownerUserID string) ([]*domain.SavedItem, error) {
	cursor, err := r.collection.Find(r.ctx, bson.M{"ownerUserId": ownerUserID})
	if err != nil {
		r.logger.Error("Database exception: ", err)
		return nil, err
	}
	defer cursor.Close(r.ctx)

	var items []*domain.SavedItem
	for cursor.Next(r.ctx) {
		var item domain.SavedItem
		if err := cursor.Decode(&item); err != nil {
			r.logger.Error("Database exception: ", err)
			return nil, err
		}
		items = append(items, &item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoSavedItemRepo) Delete(ownerUserID string, entityID string) error {
	_, err := r.collection.DeleteMany(r.ctx, bson.M{"ownerUserId": ownerUserID, "entity.id": entityID})
	if err != nil {
		r.logger.Error("Database exception: ", err)
	}
	return err
}
