package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/payetonkawa/clients-api/internal/core/domain"
)

const collectionClients = "clients"

// ClientRepository implements ports.ClientRepository on a MongoDB collection.
type ClientRepository struct {
	col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{col: db.Collection(collectionClients)}
}

// clientDoc is the stored shape. The external string id maps to the native
// ObjectID here and nowhere else.
type clientDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Email    string             `bson:"email"`
	Company  string             `bson:"company,omitempty"`
	Phone    string             `bson:"phone,omitempty"`
	IsActive bool               `bson:"is_active"`
}

func (d *clientDoc) toDomain() *domain.Client {
	return &domain.Client{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Email:    d.Email,
		Company:  d.Company,
		Phone:    d.Phone,
		IsActive: d.IsActive,
	}
}

// Insert persists a new client and returns it with the store-assigned id.
func (r *ClientRepository) Insert(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := clientDoc{
		Name:     c.Name,
		Email:    c.Email,
		Company:  c.Company,
		Phone:    c.Phone,
		IsActive: c.IsActive,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// FindByID retrieves a client by id. A malformed id is indistinguishable from
// an absent one: both yield domain.ErrClientNotFound.
func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc clientDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return doc.toDomain(), nil
}

// FindAll returns every client. No ordering is imposed.
func (r *ClientRepository) FindAll(ctx context.Context) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cur.Close(ctx)

	clients := make([]*domain.Client, 0)
	for cur.Next(ctx) {
		var doc clientDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode client: %w", err)
		}
		clients = append(clients, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// UpdateByID applies only the fields present in update and returns the
// resulting full record. An empty update reduces to a lookup, so a PUT with
// no recognised fields still 404s on an absent id but never errors.
func (r *ClientRepository) UpdateByID(ctx context.Context, id string, update domain.ClientUpdate) (*domain.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	if update.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var doc clientDoc
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": setFields(update)},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("update client: %w", err)
	}
	return doc.toDomain(), nil
}

// DeleteByID removes a client and reports whether a document was deleted.
func (r *ClientRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete client: %w", err)
	}
	return res.DeletedCount == 1, nil
}

// setFields builds the $set document from the non-nil fields only. Omitted
// fields never appear, so the store leaves them untouched.
func setFields(u domain.ClientUpdate) bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.Company != nil {
		set["company"] = *u.Company
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.IsActive != nil {
		set["is_active"] = *u.IsActive
	}
	return set
}

// EnsureIndexes creates the indexes the clients collection relies on.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
