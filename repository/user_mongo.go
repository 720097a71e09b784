package repository

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"stayease-backend/domain"
)

type MongoUserRepo struct {
	collection *mongo.Collection
	ctx        context.Context
	logger     *logrus.Logger
}

func NewMongoUserRepo(collection *mongo.Collection, ctx context.Context, logger *logrus.Logger) *MongoUserRepo {
	return &MongoUserRepo{collection, ctx, logger}
}

func (r *MongoUserRepo) Insert(user *domain.User) error {
	_, err := r.collection.InsertOne(r.ctx, user)
	if err != nil {
		r.logger.Error("Database exception: ", err)
	}
	return err
}

func (r *MongoUserRepo) FindByID(id string) (*domain.User, error) {
	var user domain.User

	query := bson.M{"_id": id}
	err := r.collection.FindOne(r.ctx, query).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound()
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepo) FindByEmail(email string) (*domain.User, error) {
	var user domain.User

	query := bson.M{"email": strings.ToLower(email)}
	err := r.collection.FindOne(r.ctx, query).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound()
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepo) Update(user *domain.User) error {
	filter := bson.M{"_id": user.ID}
	update := bson.M{"$set": bson.M{
		"name":       user.Name,
		"phone":      user.Phone,
		"avatar":     user.Avatar,
		"location":   user.Location,
		"isVerified": user.IsVerified,
	}}

	result, err := r.collection.UpdateOne(r.ctx, filter, update)
	if err != nil {
		r.logger.Error("Database exception: ", err)
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrUserNotFound()
	}
	return nil
}
