package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/parts-store-api/internal/database"
	"github.com/iliyamo/parts-store-api/internal/model"
)

// BookingRepo provides CRUD operations for bookings.  Bookings reference
// their owner by email and a tool by whatever the client sent; neither
// reference is checked.
type BookingRepo struct{ coll *mongo.Collection }

// NewBookingRepo returns a BookingRepo bound to the bookings collection.
func NewBookingRepo(db *database.DB) *BookingRepo {
	return &BookingRepo{coll: db.Collection(database.CollBookings)}
}

// Insert stores a new booking.
func (r *BookingRepo) Insert(ctx context.Context, doc model.Document) (model.InsertResult, error) {
	return insertOne(ctx, r.coll, model.Without(doc, model.FieldID))
}

// GetByID fetches one booking.  A miss is ErrNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (model.Document, error) {
	var doc model.Document
	if err := findOne(ctx, r.coll, bson.M{"_id": id}, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ListByEmail returns the bookings owned by email.
func (r *BookingRepo) ListByEmail(ctx context.Context, email string) ([]model.Document, error) {
	return findAll(ctx, r.coll, bson.M{model.FieldEmail: email})
}

// ListAll returns every booking.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.Document, error) {
	return findAll(ctx, r.coll, bson.M{})
}

// DeleteOneByEmail removes the first booking owned by email.
func (r *BookingRepo) DeleteOneByEmail(ctx context.Context, email string) (model.DeleteResult, error) {
	return deleteOne(ctx, r.coll, bson.M{model.FieldEmail: email})
}

// Delete removes one booking by id.
func (r *BookingRepo) Delete(ctx context.Context, id primitive.ObjectID) (model.DeleteResult, error) {
	return deleteOne(ctx, r.coll, bson.M{"_id": id})
}

// SetStatus overwrites the free-text shipping status of a booking.
func (r *BookingRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (model.UpdateResult, error) {
	return updateOne(ctx, r.coll,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{model.FieldStatus: status}},
		false)
}
