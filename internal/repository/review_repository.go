package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/parts-store-api/internal/database"
	"github.com/iliyamo/parts-store-api/internal/model"
)

// ReviewRepo stores customer reviews.  Reviews are append-only.
type ReviewRepo struct{ coll *mongo.Collection }

func NewReviewRepo(db *database.DB) *ReviewRepo {
	return &ReviewRepo{coll: db.Collection(database.CollReviews)}
}

func (r *ReviewRepo) Insert(ctx context.Context, doc model.Document) (model.InsertResult, error) {
	return insertOne(ctx, r.coll, model.Without(doc, model.FieldID))
}

func (r *ReviewRepo) List(ctx context.Context) ([]model.Document, error) {
	return findAll(ctx, r.coll, bson.M{})
}
