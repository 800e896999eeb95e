package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/parts-store-api/internal/database"
	"github.com/iliyamo/parts-store-api/internal/model"
)

// ToolRepo provides access to the product catalog.
type ToolRepo struct{ coll *mongo.Collection }

// NewToolRepo returns a ToolRepo bound to the tools collection.
func NewToolRepo(db *database.DB) *ToolRepo {
	return &ToolRepo{coll: db.Collection(database.CollTools)}
}

// List returns every tool.
func (r *ToolRepo) List(ctx context.Context) ([]model.Document, error) {
	return findAll(ctx, r.coll, bson.M{})
}

// GetByID fetches one tool.  A miss is ErrNotFound.
func (r *ToolRepo) GetByID(ctx context.Context, id primitive.ObjectID) (model.Document, error) {
	var doc model.Document
	if err := findOne(ctx, r.coll, bson.M{"_id": id}, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Insert stores a new tool as given.
func (r *ToolRepo) Insert(ctx context.Context, doc model.Document) (model.InsertResult, error) {
	return insertOne(ctx, r.coll, model.Without(doc, model.FieldID))
}

// Delete removes one tool by id.
func (r *ToolRepo) Delete(ctx context.Context, id primitive.ObjectID) (model.DeleteResult, error) {
	return deleteOne(ctx, r.coll, bson.M{"_id": id})
}
