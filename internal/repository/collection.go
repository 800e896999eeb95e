package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/parts-store-api/internal/logger"
	"github.com/iliyamo/parts-store-api/internal/model"
)

// The helpers below wrap the handful of driver calls every repository
// makes, converting driver results into model types and logging each call.

func findAll(ctx context.Context, coll *mongo.Collection, filter bson.M) ([]model.Document, error) {
	name := coll.Name()
	logger.DatabaseCall(ctx, "find", name, "filter", filter)
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		logger.DatabaseResult(ctx, "find", name, err)
		return nil, fmt.Errorf("find %s: %w", name, err)
	}
	docs := make([]model.Document, 0)
	if err := cur.All(ctx, &docs); err != nil {
		logger.DatabaseResult(ctx, "find", name, err)
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	logger.DatabaseResult(ctx, "find", name, nil, "count", len(docs))
	return docs, nil
}

// findOne decodes the first match into out.  A miss is ErrNotFound.
func findOne(ctx context.Context, coll *mongo.Collection, filter bson.M, out interface{}) error {
	name := coll.Name()
	logger.DatabaseCall(ctx, "findOne", name, "filter", filter)
	err := coll.FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		logger.DatabaseResult(ctx, "findOne", name, nil, "found", false)
		return ErrNotFound
	}
	logger.DatabaseResult(ctx, "findOne", name, err)
	if err != nil {
		return fmt.Errorf("findOne %s: %w", name, err)
	}
	return nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc model.Document) (model.InsertResult, error) {
	name := coll.Name()
	logger.DatabaseCall(ctx, "insertOne", name)
	res, err := coll.InsertOne(ctx, doc)
	logger.DatabaseResult(ctx, "insertOne", name, err)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("insert %s: %w", name, err)
	}
	return model.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func updateOne(ctx context.Context, coll *mongo.Collection, filter, update bson.M, upsert bool) (model.UpdateResult, error) {
	name := coll.Name()
	logger.DatabaseCall(ctx, "updateOne", name, "filter", filter, "upsert", upsert)
	res, err := coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(upsert))
	logger.DatabaseResult(ctx, "updateOne", name, err)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("update %s: %w", name, err)
	}
	return toUpdateResult(res), nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, filter bson.M) (model.DeleteResult, error) {
	name := coll.Name()
	logger.DatabaseCall(ctx, "deleteOne", name, "filter", filter)
	res, err := coll.DeleteOne(ctx, filter)
	logger.DatabaseResult(ctx, "deleteOne", name, err)
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("delete %s: %w", name, err)
	}
	return model.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func toUpdateResult(res *mongo.UpdateResult) model.UpdateResult {
	return model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}
