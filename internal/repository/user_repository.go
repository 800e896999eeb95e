package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/parts-store-api/internal/database"
	"github.com/iliyamo/parts-store-api/internal/model"
)

// UserRepo provides access to user accounts keyed by email.
type UserRepo struct{ coll *mongo.Collection }

// NewUserRepo returns a UserRepo bound to the users collection.
func NewUserRepo(db *database.DB) *UserRepo {
	return &UserRepo{coll: db.Collection(database.CollUsers)}
}

// Upsert writes the login payload for email, creating the account on first
// login.  The role and _id keys of doc are ignored so a client cannot
// promote itself; roles change only through SetAdmin.
func (r *UserRepo) Upsert(ctx context.Context, email string, doc model.Document) (model.UpdateResult, error) {
	set := model.Without(doc, model.FieldID, model.FieldRole)
	set[model.FieldEmail] = email
	return updateOne(ctx, r.coll, bson.M{model.FieldEmail: email}, bson.M{"$set": set}, true)
}

// GetByEmail returns the account for email or ErrNotFound.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	if err := findOne(ctx, r.coll, bson.M{model.FieldEmail: email}, &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// SetAdmin grants the admin role to an existing account.  A missing account
// is reported through MatchedCount, not an error.
func (r *UserRepo) SetAdmin(ctx context.Context, email string) (model.UpdateResult, error) {
	return updateOne(ctx, r.coll,
		bson.M{model.FieldEmail: email},
		bson.M{"$set": bson.M{model.FieldRole: model.RoleAdmin}},
		false)
}

// ListByEmail returns the accounts matching email.
func (r *UserRepo) ListByEmail(ctx context.Context, email string) ([]model.Document, error) {
	return findAll(ctx, r.coll, bson.M{model.FieldEmail: email})
}

// ListAll returns every account.
func (r *UserRepo) ListAll(ctx context.Context) ([]model.Document, error) {
	return findAll(ctx, r.coll, bson.M{})
}

// DeleteByEmail removes one account.  Bookings and profiles are kept.
func (r *UserRepo) DeleteByEmail(ctx context.Context, email string) (model.DeleteResult, error) {
	return deleteOne(ctx, r.coll, bson.M{model.FieldEmail: email})
}
