package handler

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/parts-store-api/internal/model"
	q "github.com/iliyamo/parts-store-api/internal/queue"
)

// The interfaces below are the slices of the repositories each handler
// uses.  The repository package satisfies them with its Mongo-backed
// types; tests use in-memory fakes.

type ToolStore interface {
	List(ctx context.Context) ([]model.Document, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (model.Document, error)
	Insert(ctx context.Context, doc model.Document) (model.InsertResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (model.DeleteResult, error)
}

type BookingStore interface {
	Insert(ctx context.Context, doc model.Document) (model.InsertResult, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (model.Document, error)
	ListByEmail(ctx context.Context, email string) ([]model.Document, error)
	ListAll(ctx context.Context) ([]model.Document, error)
	DeleteOneByEmail(ctx context.Context, email string) (model.DeleteResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (model.DeleteResult, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (model.UpdateResult, error)
}

type UserStore interface {
	Upsert(ctx context.Context, email string, doc model.Document) (model.UpdateResult, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	SetAdmin(ctx context.Context, email string) (model.UpdateResult, error)
	ListByEmail(ctx context.Context, email string) ([]model.Document, error)
	ListAll(ctx context.Context) ([]model.Document, error)
	DeleteByEmail(ctx context.Context, email string) (model.DeleteResult, error)
}

type ProfileStore interface {
	Upsert(ctx context.Context, email string, doc model.Document) (model.UpdateResult, error)
	ListByEmail(ctx context.Context, email string) ([]model.Document, error)
}

type ReviewStore interface {
	Insert(ctx context.Context, doc model.Document) (model.InsertResult, error)
	List(ctx context.Context) ([]model.Document, error)
}

type PaymentStore interface {
	RecordCardPayment(ctx context.Context, bookingID primitive.ObjectID, payment model.Document) (model.UpdateResult, error)
}

// PaymentGateway creates a payment intent and returns its client secret.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// EventPublisher sends booking events to the bus.
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, ev q.BookingEvent) error
}

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
