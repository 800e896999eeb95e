package model

// InsertResult is returned by single-document inserts.
type InsertResult struct {
    Acknowledged bool        `json:"acknowledged"`
    InsertedID   interface{} `json:"insertedId"`
}

// UpdateResult is returned by updates and upserts.  UpsertedID is nil
// unless the write created a document.
type UpdateResult struct {
    Acknowledged  bool        `json:"acknowledged"`
    MatchedCount  int64       `json:"matchedCount"`
    ModifiedCount int64       `json:"modifiedCount"`
    UpsertedCount int64       `json:"upsertedCount"`
    UpsertedID    interface{} `json:"upsertedId"`
}

// DeleteResult is returned by single-document deletes.
type DeleteResult struct {
    Acknowledged bool  `json:"acknowledged"`
    DeletedCount int64 `json:"deletedCount"`
}
