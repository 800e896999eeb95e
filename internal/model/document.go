package model

import "go.mongodb.org/mongo-driver/bson"

// Document is a loosely typed record as stored in a collection.  Tools,
// bookings, profiles, reviews and payments carry free-form fields, so the
// API passes them through as-is and only reads the keys it needs.
type Document = bson.M

// Well-known document keys.
const (
    FieldID            = "_id"
    FieldEmail         = "email"
    FieldRole          = "role"
    FieldStatus        = "status"
    FieldPaid          = "paid"
    FieldTransactionID = "transactionId"
    FieldBookingID     = "bookingId"
    FieldCreatedAt     = "createdAt"
)

// StringField returns d[key] when it is a string.
func StringField(d Document, key string) string {
    if d == nil {
        return ""
    }
    s, _ := d[key].(string)
    return s
}

// Without returns a shallow copy of d minus the given keys.  Used to build
// $set payloads from request bodies.
func Without(d Document, keys ...string) Document {
    out := make(Document, len(d))
    for k, v := range d {
        out[k] = v
    }
    for _, k := range keys {
        delete(out, k)
    }
    return out
}
