package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/parts-store-api/internal/database"
	"github.com/iliyamo/parts-store-api/internal/model"
)

// PaymentRepo records card payments against bookings.  Payments are never
// read back through the API.
type PaymentRepo struct {
	client   *mongo.Client
	payments *mongo.Collection
	bookings *mongo.Collection
}

// NewPaymentRepo returns a PaymentRepo.  It needs the client as well as the
// collections because recording a payment runs in a session transaction.
func NewPaymentRepo(db *database.DB) *PaymentRepo {
	return &PaymentRepo{
		client:   db.Client,
		payments: db.Collection(database.CollPayments),
		bookings: db.Collection(database.CollBookings),
	}
}

// RecordCardPayment inserts the payment and marks the booking paid with the
// payment's transactionId in one transaction.  If the booking does not
// exist nothing is written and ErrNotFound is returned.  Calling it twice
// for the same booking stores two payments.
func (r *PaymentRepo) RecordCardPayment(ctx context.Context, bookingID primitive.ObjectID, payment model.Document) (model.UpdateResult, error) {
	doc := model.Without(payment, model.FieldID)
	doc[model.FieldBookingID] = bookingID
	doc[model.FieldCreatedAt] = time.Now().UTC()
	txID := doc[model.FieldTransactionID]

	sess, err := r.client.StartSession()
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	out, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := insertOne(sc, r.payments, doc); err != nil {
			return nil, err
		}
		res, err := updateOne(sc, r.bookings,
			bson.M{"_id": bookingID},
			bson.M{"$set": bson.M{model.FieldPaid: true, model.FieldTransactionID: txID}},
			false)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, ErrNotFound
		}
		return res, nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.UpdateResult{}, ErrNotFound
		}
		return model.UpdateResult{}, fmt.Errorf("record card payment: %w", err)
	}
	return out.(model.UpdateResult), nil
}
