package repository

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"stayease-backend/domain"
)

type MongoBookingRepo struct {
	collection *mongo.Collection
	ctx        context.Context
	logger     *logrus.Logger
}

func NewMongoBookingRepo(collection *mongo.Collection, ctx context.Context, logger *logrus.Logger) *MongoBookingRepo {
	return &MongoBookingRepo{collection, ctx, logger}
}

func (r *MongoBookingRepo) Insert(booking *domain.Booking) error {
	_, err := r.collection.InsertOne(r.ctx, booking)
	if err != nil {
		r.logger.Error("Database exception: ", err)
	}
	return err
}

func (r *MongoBookingRepo) GetByConfirmationNumber(confirmationNumber string) (*domain.Booking, error) {
	var booking domain.Booking

	query := bson.M{"confirmationNumber": confirmationNumber}
	err := r.collection.FindOne(r.ctx, query).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound()
		}
		return nil, err
	}
	return &booking, nil
}

func (r *MongoBookingRepo) ListByOwner(ownerUserID string) (domain.Bookings, error) {
	return r.list(bson.M{"ownerUserId": ownerUserID})
}

func (r *MongoBookingRepo) ListUnowned() (domain.Bookings, error) {
	query := bson.M{"$or": bson.A{
		bson.M{"ownerUserId": bson.M{"$exists": false}},
		bson.M{"ownerUserId": ""},
	}}
	return r.list(query)
}

func (r *MongoBookingRepo) list(query bson.M) (domain.Bookings, error) {
	cursor, err := r.collection.Find(r.ctx, query)
	if err != nil {
		r.logger.Error("Database exception: ", err)
		return nil, err
	}
	defer cursor.Close(r.ctx)

	var bookings domain.Bookings
	for cursor.Next(r.ctx) {
		var booking domain.Booking
		if err := cursor.Decode(&booking); err != nil {
			r.logger.Error("Database exception: ", err)
			return nil, err
		}
		bookings = append(bookings, &booking)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *MongoBookingRepo) UpdateStatus(confirmationNumber string, status domain.BookingStatus) error {
	filter := bson.M{"confirmationNumber": confirmationNumber}
	update := bson.M{"$set": bson.M{"status": status}}

	result, err := r.collection.UpdateOne(r.ctx, filter, update)
	if err != nil {
		r.logger.Error("Database exception: ", err)
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound()
	}
	return nil
}

func (r *MongoBookingRepo) AssignOwner(confirmationNumber string, ownerUserID string) error {
	filter := bson.M{"confirmationNumber": confirmationNumber}
	update := bson.M{"$set": bson.M{"ownerUserId": ownerUserID}}

	result, err := r.collection.UpdateOne(r.ctx, filter, update)
	if err != nil {
		r.logger.Error("Database exception: ", err)
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound()
	}
	return nil
}

func (r *MongoBookingRepo) ConfirmationNumberExists(confirmationNumber string) (bool, error) {
	count, err := r.collection.CountDocuments(r.ctx, bson.M{"confirmationNumber": confirmationNumber})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
