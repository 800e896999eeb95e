package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/parts-store-api/internal/database"
	"github.com/iliyamo/parts-store-api/internal/model"
)

// ProfileRepo stores free-form user profiles keyed by email.
type ProfileRepo struct{ coll *mongo.Collection }

// NewProfileRepo returns a ProfileRepo bound to the userProfile collection.
func NewProfileRepo(db *database.DB) *ProfileRepo {
	return &ProfileRepo{coll: db.Collection(database.CollUserProfile)}
}

// Upsert merges doc into the profile for email.
func (r *ProfileRepo) Upsert(ctx context.Context, email string, doc model.Document) (model.UpdateResult, error) {
	set := model.Without(doc, model.FieldID)
	set[model.FieldEmail] = email
	return updateOne(ctx, r.coll, bson.M{model.FieldEmail: email}, bson.M{"$set": set}, true)
}

// ListByEmail returns the profiles stored for email.
func (r *ProfileRepo) ListByEmail(ctx context.Context, email string) ([]model.Document, error) {
	return findAll(ctx, r.coll, bson.M{model.FieldEmail: email})
}
