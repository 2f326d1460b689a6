package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/contact-book/internal/model"
)

// ContactRepo persists address book entries in the `contacts` collection.
// Every mutation filters on owner_uid as well as _id, so a contact that
// belongs to another user behaves exactly like one that does not exist.
type ContactRepo struct {
	contacts *mongo.Collection
}

func NewContactRepo(db *mongo.Database) *ContactRepo {
	return &ContactRepo{contacts: db.Collection("contacts")}
}

// ListByOwner returns every contact owned by the given uid. The result is
// never nil so an empty book renders as a JSON array.
func (r *ContactRepo) ListByOwner(ctx context.Context, owner int64) ([]model.Contact, error) {
	cur, err := r.contacts.Find(ctx, bson.M{"owner_uid": owner})
	if err != nil {
		return nil, err
	}
	items := make([]model.Contact, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Insert stores a new contact and fills in its generated ObjectID.
func (r *ContactRepo) Insert(ctx context.Context, ct *model.Contact) error {
	res, err := r.contacts.InsertOne(ctx, ct)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		ct.ID = oid
	}
	return nil
}

// Update replaces the name/email/phone/address of the contact matching both
// the id and the owner. Zero matched documents, including a malformed id,
// yield ErrContactNotFound.
func (r *ContactRepo) Update(ctx context.Context, id string, owner int64, f model.ContactFields) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrContactNotFound
	}
	res, err := r.contacts.UpdateOne(ctx,
		bson.M{"_id": oid, "owner_uid": owner},
		bson.M{"$set": bson.M{
			"name":    f.Name,
			"email":   f.Email,
			"phone":   f.Phone,
			"address": f.Address,
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrContactNotFound
	}
	return nil
}

// Delete removes the contact matching both the id and the owner.
func (r *ContactRepo) Delete(ctx context.Context, id string, owner int64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrContactNotFound
	}
	res, err := r.contacts.DeleteOne(ctx, bson.M{"_id": oid, "owner_uid": owner})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrContactNotFound
	}
	return nil
}

// HasEmailOrPhone reports whether the owner already has a contact carrying
// the given email or phone. Empty values are excluded from the match so a
// friend without an email cannot collide with unrelated blank contacts;
// when both values are empty there is nothing to match and the answer is no.
func (r *ContactRepo) HasEmailOrPhone(ctx context.Context, owner int64, email, phone string) (bool, error) {
	or := make([]bson.M, 0, 2)
	if email != "" {
		or = append(or, bson.M{"email": email})
	}
	if phone != "" {
		or = append(or, bson.M{"phone": phone})
	}
	if len(or) == 0 {
		return false, nil
	}
	err := r.contacts.FindOne(ctx, bson.M{"owner_uid": owner, "$or": or}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
