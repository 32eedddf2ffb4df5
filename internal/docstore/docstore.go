// Package docstore implements the feedback record store on MongoDB.
//
// Records live in a single collection (default "feedbacks") with camelCase
// field names; identifiers are ObjectIDs exposed to callers as 24-character
// hex strings. Idempotency records live in a sibling "idempotency" collection
// keyed by the Idempotency-Key and expired by a TTL index.
//
// Error semantics mirror the SQLite store:
//   - a missing record, or an identifier that is not a valid ObjectID, yields
//     ErrNotFound;
//   - a record failing the schema check yields an error wrapping
//     domain.ErrValidation and nothing is written;
//   - driver errors are returned unchanged.
package docstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/li-0406/foodApi/internal/config"
	"github.com/li-0406/foodApi/internal/domain"
)

// IdempotencyCollection holds create-request replay records.
const IdempotencyCollection = "idempotency"

var (
	ErrNotFound  = domain.ErrNotFound
	ErrDuplicate = domain.ErrDuplicate
)

type feedbackDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ContactPerson string             `bson:"contactPerson"`
	Phone         string             `bson:"phone,omitempty"`
	Email         string             `bson:"email"`
	Feedback      string             `bson:"feedback"`
	Source        string             `bson:"source,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

func (d feedbackDoc) toDomain() domain.Feedback {
	return domain.Feedback{
		ID:            d.ID.Hex(),
		ContactPerson: d.ContactPerson,
		Phone:         d.Phone,
		Email:         d.Email,
		Feedback:      d.Feedback,
		Source:        d.Source,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}
}

type idempotencyDoc struct {
	Key        string    `bson:"_id"`
	FeedbackID string    `bson:"feedbackId"`
	CreatedAt  time.Time `bson:"createdAt"`
	ExpiresAt  time.Time `bson:"expiresAt"`
}

func (d idempotencyDoc) toDomain() *domain.Idempotency {
	return &domain.Idempotency{
		Key:        d.Key,
		FeedbackID: d.FeedbackID,
		CreatedAt:  d.CreatedAt.UTC(),
		ExpiresAt:  d.ExpiresAt.UTC(),
	}
}

// Store is the MongoDB-backed record store.
type Store struct {
	client    *mongo.Client
	feedbacks *mongo.Collection
	idem      *mongo.Collection
}

// New builds a Store over an existing database handle.
func New(db *mongo.Database, collection string) *Store {
	return &Store{
		client:    db.Client(),
		feedbacks: db.Collection(collection),
		idem:      db.Collection(IdempotencyCollection),
	}
}

// Connect dials MongoDB, verifies the primary answers within cfg.Timeout and
// returns a Store over cfg.Database / cfg.Collection.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	cctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.Timeout).
		SetServerSelectionTimeout(cfg.Timeout))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(cctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return New(client.Database(cfg.Database), cfg.Collection), nil
}

// EnsureIndexes creates the email lookup index and the TTL index that lets
// the server drop expired idempotency records on its own.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	if _, err := s.feedbacks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	}); err != nil {
		return err
	}
	_, err := s.idem.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expiresAt", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	return err
}

// Ping checks that the primary answers.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// CreateFeedback checks the schema, stamps timestamps and inserts f. On
// success f carries the new hex identifier.
func (s *Store) CreateFeedback(ctx context.Context, f *domain.Feedback) error {
	if err := f.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := feedbackDoc{
		ID:            primitive.NewObjectID(),
		ContactPerson: f.ContactPerson,
		Phone:         f.Phone,
		Email:         f.Email,
		Feedback:      f.Feedback,
		Source:        f.Source,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := s.feedbacks.InsertOne(ctx, doc); err != nil {
		return err
	}
	*f = doc.toDomain()
	return nil
}

// ListFeedbacks returns every record in insertion order.
func (s *Store) ListFeedbacks(ctx context.Context) ([]domain.Feedback, error) {
	cur, err := s.feedbacks.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []feedbackDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]domain.Feedback, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// GetFeedback fetches one record by hex identifier.
func (s *Store) GetFeedback(ctx context.Context, id string) (*domain.Feedback, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	doc, err := s.findByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	f := doc.toDomain()
	return &f, nil
}

// UpdateFeedback loads the record, applies p, re-checks the schema and
// writes the changed fields. Nothing is written when validation fails.
func (s *Store) UpdateFeedback(ctx context.Context, id string, p domain.FeedbackPatch) (*domain.Feedback, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	doc, err := s.findByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	f := doc.toDomain()
	p.Apply(&f)
	if err := f.Validate(); err != nil {
		return nil, err
	}

	set := bson.M{
		"contactPerson": f.ContactPerson,
		"email":         f.Email,
		"feedback":      f.Feedback,
		"updatedAt":     time.Now().UTC().Truncate(time.Millisecond),
	}
	unset := bson.M{}
	setOrUnset(set, unset, "phone", f.Phone)
	setOrUnset(set, unset, "source", f.Source)
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	var updated feedbackDoc
	err = s.feedbacks.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	out := updated.toDomain()
	return &out, nil
}

// DeleteFeedback removes one record by hex identifier.
func (s *Store) DeleteFeedback(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.feedbacks.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FeedbackStats returns the record count and the latest updatedAt, or
// (0, nil) for an empty collection.
func (s *Store) FeedbackStats(ctx context.Context) (int64, *time.Time, error) {
	count, err := s.feedbacks.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}
	var row struct {
		UpdatedAt time.Time `bson:"updatedAt"`
	}
	err = s.feedbacks.FindOne(ctx, bson.D{},
		options.FindOne().
			SetSort(bson.D{{Key: "updatedAt", Value: -1}}).
			SetProjection(bson.D{{Key: "updatedAt", Value: 1}})).Decode(&row)
	if err != nil {
		return 0, nil, err
	}
	ts := row.UpdatedAt.UTC()
	return count, &ts, nil
}

// GetIdempotency returns a live record for key, or ErrNotFound.
func (s *Store) GetIdempotency(ctx context.Context, key string, now time.Time) (*domain.Idempotency, error) {
	if key == "" {
		return nil, ErrNotFound
	}
	var doc idempotencyDoc
	err := s.idem.FindOne(ctx, bson.M{"_id": key, "expiresAt": bson.M{"$gt": now}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

// CreateIdempotency stores key -> feedbackID for ttl. A live record for the
// same key yields ErrDuplicate; an expired one is replaced.
func (s *Store) CreateIdempotency(ctx context.Context, key, feedbackID string, ttl time.Duration) (*domain.Idempotency, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	if _, err := s.idem.DeleteOne(ctx, bson.M{"_id": key, "expiresAt": bson.M{"$lte": now}}); err != nil {
		return nil, err
	}
	doc := idempotencyDoc{Key: key, FeedbackID: feedbackID, CreatedAt: now, ExpiresAt: now.Add(ttl)}
	if _, err := s.idem.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// PurgeExpiredIdempotency deletes records expired at now. The TTL index does
// the same lazily on the server; this makes the sweep deterministic.
func (s *Store) PurgeExpiredIdempotency(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.idem.DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lte": now}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) findByID(ctx context.Context, oid primitive.ObjectID) (*feedbackDoc, error) {
	var doc feedbackDoc
	err := s.feedbacks.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func setOrUnset(set, unset bson.M, field, value string) {
	if value == "" {
		unset[field] = ""
		return
	}
	set[field] = value
}
