// Package testutil holds in-memory stand-ins for the Mongo repositories,
// the payment gateway and the event publisher.  They satisfy the handler
// store interfaces and are safe for concurrent use.
package testutil

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/parts-store-api/internal/model"
	q "github.com/iliyamo/parts-store-api/internal/queue"
	"github.com/iliyamo/parts-store-api/internal/repository"
)

type match func(model.Document) bool

func byID(id primitive.ObjectID) match {
	return func(d model.Document) bool {
		got, _ := d[model.FieldID].(primitive.ObjectID)
		return got == id
	}
}

func byEmail(email string) match {
	return func(d model.Document) bool { return model.StringField(d, model.FieldEmail) == email }
}

func all(model.Document) bool { return true }

// memColl is a tiny collection.  Err, when set, is returned by every call.
type memColl struct {
	mu   sync.Mutex
	docs []model.Document
	Err  error
}

// Put stores doc as given, adding an _id when it has none, and returns the id.
func (m *memColl) Put(doc model.Document) primitive.ObjectID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.put(doc)
}

func (m *memColl) put(doc model.Document) primitive.ObjectID {
	d := model.Without(doc)
	id, ok := d[model.FieldID].(primitive.ObjectID)
	if !ok {
		id = primitive.NewObjectID()
		d[model.FieldID] = id
	}
	m.docs = append(m.docs, d)
	return id
}

// Docs returns copies of every stored document.
func (m *memColl) Docs() []model.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.find(all)
}

func (m *memColl) find(f match) []model.Document {
	out := []model.Document{}
	for _, d := range m.docs {
		if f(d) {
			out = append(out, model.Without(d))
		}
	}
	return out
}

func (m *memColl) insert(ctx context.Context, doc model.Document) (model.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return model.InsertResult{}, m.Err
	}
	return model.InsertResult{Acknowledged: true, InsertedID: m.put(doc)}, nil
}

func (m *memColl) list(ctx context.Context, f match) ([]model.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.find(f), nil
}

func (m *memColl) one(ctx context.Context, f match) (model.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if found := m.find(f); len(found) > 0 {
		return found[0], nil
	}
	return nil, repository.ErrNotFound
}

func (m *memColl) deleteOne(ctx context.Context, f match) (model.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return model.DeleteResult{}, m.Err
	}
	for i, d := range m.docs {
		if f(d) {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return model.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return model.DeleteResult{Acknowledged: true}, nil
}

// update applies set to the first match, inserting set when upsert is true
// and nothing matches.
func (m *memColl) update(ctx context.Context, f match, set model.Document, upsert bool) (model.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return model.UpdateResult{}, m.Err
	}
	return m.updateLocked(f, set, upsert), nil
}

func (m *memColl) updateLocked(f match, set model.Document, upsert bool) model.UpdateResult {
	for _, d := range m.docs {
		if !f(d) {
			continue
		}
		changed := int64(0)
		for k, v := range set {
			if !reflect.DeepEqual(d[k], v) {
				changed = 1
			}
			d[k] = v
		}
		return model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: changed}
	}
	if !upsert {
		return model.UpdateResult{Acknowledged: true}
	}
	id := m.put(set)
	return model.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id}
}

// Tools is an in-memory tools collection.
type Tools struct{ memColl }

func (s *Tools) List(ctx context.Context) ([]model.Document, error) { return s.list(ctx, all) }
func (s *Tools) GetByID(ctx context.Context, id primitive.ObjectID) (model.Document, error) {
	return s.one(ctx, byID(id))
}
func (s *Tools) Insert(ctx context.Context, doc model.Document) (model.InsertResult, error) {
	return s.insert(ctx, model.Without(doc, model.FieldID))
}
func (s *Tools) Delete(ctx context.Context, id primitive.ObjectID) (model.DeleteResult, error) {
	return s.deleteOne(ctx, byID(id))
}

// Bookings is an in-memory bookings collection.
type Bookings struct{ memColl }

func (s *Bookings) Insert(ctx context.Context, doc model.Document) (model.InsertResult, error) {
	return s.insert(ctx, model.Without(doc, model.FieldID))
}
func (s *Bookings) GetByID(ctx context.Context, id primitive.ObjectID) (model.Document, error) {
	return s.one(ctx, byID(id))
}
func (s *Bookings) ListByEmail(ctx context.Context, email string) ([]model.Document, error) {
	return s.list(ctx, byEmail(email))
}
func (s *Bookings) ListAll(ctx context.Context) ([]model.Document, error) { return s.list(ctx, all) }
func (s *Bookings) DeleteOneByEmail(ctx context.Context, email string) (model.DeleteResult, error) {
	return s.deleteOne(ctx, byEmail(email))
}
func (s *Bookings) Delete(ctx context.Context, id primitive.ObjectID) (model.DeleteResult, error) {
	return s.deleteOne(ctx, byID(id))
}
func (s *Bookings) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (model.UpdateResult, error) {
	return s.update(ctx, byID(id), model.Document{model.FieldStatus: status}, false)
}

// Users is an in-memory users collection.
type Users struct{ memColl }

func (s *Users) Upsert(ctx context.Context, email string, doc model.Document) (model.UpdateResult, error) {
	set := model.Without(doc, model.FieldID, model.FieldRole)
	set[model.FieldEmail] = email
	return s.update(ctx, byEmail(email), set, true)
}
func (s *Users) GetByEmail(ctx context.Context, email string) (model.User, error) {
	d, err := s.one(ctx, byEmail(email))
	if err != nil {
		return model.User{}, err
	}
	id, _ := d[model.FieldID].(primitive.ObjectID)
	return model.User{
		ID:    id,
		Email: model.StringField(d, model.FieldEmail),
		Role:  model.StringField(d, model.FieldRole),
	}, nil
}
func (s *Users) SetAdmin(ctx context.Context, email string) (model.UpdateResult, error) {
	return s.update(ctx, byEmail(email), model.Document{model.FieldRole: model.RoleAdmin}, false)
}
func (s *Users) ListByEmail(ctx context.Context, email string) ([]model.Document, error) {
	return s.list(ctx, byEmail(email))
}
func (s *Users) ListAll(ctx context.Context) ([]model.Document, error) { return s.list(ctx, all) }
func (s *Users) DeleteByEmail(ctx context.Context, email string) (model.DeleteResult, error) {
	return s.deleteOne(ctx, byEmail(email))
}

// Profiles is an in-memory userProfile collection.
type Profiles struct{ memColl }

func (s *Profiles) Upsert(ctx context.Context, email string, doc model.Document) (model.UpdateResult, error) {
	set := model.Without(doc, model.FieldID)
	set[model.FieldEmail] = email
	return s.update(ctx, byEmail(email), set, true)
}
func (s *Profiles) ListByEmail(ctx context.Context, email string) ([]model.Document, error) {
	return s.list(ctx, byEmail(email))
}

// Reviews is an in-memory reviews collection.
type Reviews struct{ memColl }

func (s *Reviews) Insert(ctx context.Context, doc model.Document) (model.InsertResult, error) {
	return s.insert(ctx, model.Without(doc, model.FieldID))
}
func (s *Reviews) List(ctx context.Context) ([]model.Document, error) { return s.list(ctx, all) }

// Payments records payments against a Bookings fake.  A payment for a
// missing booking writes nothing, like the transactional repository.
type Payments struct {
	memColl
	Bookings *Bookings
}

func (s *Payments) RecordCardPayment(ctx context.Context, bookingID primitive.ObjectID, payment model.Document) (model.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return model.UpdateResult{}, s.Err
	}
	s.Bookings.mu.Lock()
	defer s.Bookings.mu.Unlock()
	if len(s.Bookings.find(byID(bookingID))) == 0 {
		return model.UpdateResult{}, repository.ErrNotFound
	}
	doc := model.Without(payment, model.FieldID)
	doc[model.FieldBookingID] = bookingID
	s.put(doc)
	return s.Bookings.updateLocked(byID(bookingID), model.Document{
		model.FieldPaid:          true,
		model.FieldTransactionID: doc[model.FieldTransactionID],
	}, false), nil
}

// Gateway is a payment gateway that records the amounts it was asked for.
type Gateway struct {
	mu      sync.Mutex
	amounts []int64
	Secret  string
	Err     error
}

func (g *Gateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.amounts = append(g.amounts, amount)
	if g.Err != nil {
		return "", g.Err
	}
	if g.Secret == "" {
		return "pi_test_secret", nil
	}
	return g.Secret, nil
}

// Amounts returns the amounts of every call so far.
func (g *Gateway) Amounts() []int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]int64(nil), g.amounts...)
}

// Publisher collects published booking events.
type Publisher struct {
	mu     sync.Mutex
	events []q.BookingEvent
}

func (p *Publisher) PublishBookingEvent(ctx context.Context, ev q.BookingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

// Events returns the events published so far.
func (p *Publisher) Events() []q.BookingEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]q.BookingEvent(nil), p.events...)
}
