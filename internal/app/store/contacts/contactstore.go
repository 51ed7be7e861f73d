// Package contactstore persists contact-form inquiries.
package contactstore

import (
	"context"
	"time"

	"github.com/dalemusser/firmsite/internal/app/system/paging"
	"github.com/dalemusser/firmsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contacts")}
}

// Create inserts an inquiry. New inquiries start pending and unread.
func (s *Store) Create(ctx context.Context, c models.Contact) (models.Contact, error) {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.Status = models.ContactStatusPending
	c.IsRead = false
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Contact{}, err
	}
	return c, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Contact, error) {
	var c models.Contact
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return models.Contact{}, err
	}
	return c, nil
}

// Filter narrows List results. Search matches name, email, or query text
// case-insensitively; Service matches as a substring.
type Filter struct {
	Status  string
	IsRead  *bool
	Service string
	Search  string
}

func (f Filter) query() bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.IsRead != nil {
		q["is_read"] = *f.IsRead
	}
	if f.Service != "" {
		q["service"] = bson.M{"$regex": f.Service, "$options": "i"}
	}
	if f.Search != "" {
		q["$or"] = []bson.M{
			{"first_name": bson.M{"$regex": f.Search, "$options": "i"}},
			{"last_name": bson.M{"$regex": f.Search, "$options": "i"}},
			{"email": bson.M{"$regex": f.Search, "$options": "i"}},
			{"query": bson.M{"$regex": f.Search, "$options": "i"}},
		}
	}
	return q
}

// List returns one page of inquiries matching the filter, newest first, with
// the total match count.
func (s *Store) List(ctx context.Context, f Filter, p paging.Params) ([]models.Contact, int64, error) {
	query := f.query()

	total, err := s.c.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))

	cur, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	contacts := []models.Contact{}
	if err := cur.All(ctx, &contacts); err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// UpdateStatus sets the triage status and returns the updated inquiry.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (models.Contact, error) {
	return s.update(ctx, id, bson.M{"status": status})
}

// SetRead sets the read flag and returns the updated inquiry.
func (s *Store) SetRead(ctx context.Context, id primitive.ObjectID, read bool) (models.Contact, error) {
	return s.update(ctx, id, bson.M{"is_read": read})
}

func (s *Store) update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Contact, error) {
	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c models.Contact
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&c)
	if err != nil {
		return models.Contact{}, err
	}
	return c, nil
}

// Delete removes an inquiry. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// StatusBreakdown counts inquiries per status.
func (s *Store) StatusBreakdown(ctx context.Context) (map[string]int64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	breakdown := map[string]int64{
		models.ContactStatusPending:    0,
		models.ContactStatusInProgress: 0,
		models.ContactStatusResolved:   0,
		models.ContactStatusClosed:     0,
	}
	var row struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	for cur.Next(ctx) {
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		breakdown[row.ID] = row.Count
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return breakdown, nil
}

// CountUnread counts inquiries not yet marked read.
func (s *Store) CountUnread(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"is_read": false})
}

// ServiceCount is one row of the most-requested-services breakdown.
type ServiceCount struct {
	ID    string `bson:"_id" json:"_id"`
	Count int64  `bson:"count" json:"count"`
}

// MonthlyCount is one month's inquiry volume.
type MonthlyCount struct {
	Year  int   `bson:"year" json:"year"`
	Month int   `bson:"month" json:"month"`
	Count int64 `bson:"count" json:"count"`
}

// Stats is the contact dashboard summary.
type Stats struct {
	Total        int64            `json:"totalContacts"`
	Unread       int64            `json:"unreadContacts"`
	ByStatus     map[string]int64 `json:"statusBreakdown"`
	TopServices  []ServiceCount   `json:"topServices"`
	MonthlyTrend []MonthlyCount   `json:"monthlyTrend"`
}

// Stats computes the dashboard summary: totals, the status breakdown, the
// ten most requested services, and monthly volume over the trailing twelve
// months.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	out := Stats{
		TopServices:  []ServiceCount{},
		MonthlyTrend: []MonthlyCount{},
	}

	total, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return Stats{}, err
	}
	out.Total = total

	if out.Unread, err = s.CountUnread(ctx); err != nil {
		return Stats{}, err
	}
	if out.ByStatus, err = s.StatusBreakdown(ctx); err != nil {
		return Stats{}, err
	}
	if out.TopServices, err = s.topServices(ctx); err != nil {
		return Stats{}, err
	}
	if out.MonthlyTrend, err = s.monthlyTrend(ctx); err != nil {
		return Stats{}, err
	}
	return out, nil
}

func (s *Store) topServices(ctx context.Context) ([]ServiceCount, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$service", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"count": -1}},
		{"$limit": 10},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := []ServiceCount{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) monthlyTrend(ctx context.Context) ([]MonthlyCount, error) {
	since := time.Now().UTC().AddDate(-1, 0, 0)
	pipeline := []bson.M{
		{"$match": bson.M{"created_at": bson.M{"$gte": since}}},
		{"$group": bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$created_at"},
				"month": bson.M{"$month": "$created_at"},
			},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id.year": 1, "_id.month": 1}},
		{"$project": bson.M{
			"_id":   0,
			"year":  "$_id.year",
			"month": "$_id.month",
			"count": 1,
		}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := []MonthlyCount{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
