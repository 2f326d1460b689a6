package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/contact-book/internal/model"
)

// UserRepo persists users in the `users` collection and mints uids from the
// `user_id` sequence document in the `counters` collection.
type UserRepo struct {
	users    *mongo.Collection
	counters *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{
		users:    db.Collection("users"),
		counters: db.Collection("counters"),
	}
}

// NextUID atomically increments the user id sequence and returns the new
// value. The upsert creates the counter document on first use, so a fresh
// database starts handing out uids from 1.
func (r *UserRepo) NextUID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	res := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "user_id"},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts)
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

// Insert stores a new user document.
func (r *UserRepo) Insert(ctx context.Context, u *model.User) error {
	_, err := r.users.InsertOne(ctx, u)
	return err
}

// FindByUID fetches a user by uid.
func (r *UserRepo) FindByUID(ctx context.Context, uid int64) (*model.User, error) {
	var u model.User
	err := r.users.FindOne(ctx, bson.M{"uid": uid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByAccount resolves a login identity. A value made up entirely of
// digits is treated as a uid; anything else matches name, email or phone.
// The password is deliberately not part of the query, so a miss here and a
// wrong password later are indistinguishable to the client.
func (r *UserRepo) FindByAccount(ctx context.Context, account string) (*model.User, error) {
	account = strings.TrimSpace(account)
	var filter bson.M
	if uid, err := strconv.ParseInt(account, 10, 64); err == nil && account != "" {
		filter = bson.M{"uid": uid}
	} else {
		filter = bson.M{"$or": []bson.M{
			{"email": account},
			{"phone": account},
			{"name": account},
		}}
	}
	var u model.User
	err := r.users.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// EmailTaken reports whether another user already holds the given email.
// excludeUID filters out the caller's own record on profile updates; pass 0
// during registration since no user ever has uid 0.
func (r *UserRepo) EmailTaken(ctx context.Context, email string, excludeUID int64) (bool, error) {
	return r.fieldTaken(ctx, "email", email, excludeUID)
}

// PhoneTaken reports whether another user already holds the given phone number.
func (r *UserRepo) PhoneTaken(ctx context.Context, phone string, excludeUID int64) (bool, error) {
	return r.fieldTaken(ctx, "phone", phone, excludeUID)
}

func (r *UserRepo) fieldTaken(ctx context.Context, field, value string, excludeUID int64) (bool, error) {
	filter := bson.M{field: value, "uid": bson.M{"$ne": excludeUID}}
	err := r.users.FindOne(ctx, filter).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateProfile applies the supplied profile fields in a single $set. Nil
// fields are skipped; an empty update set is a no-op and succeeds.
func (r *UserRepo) UpdateProfile(ctx context.Context, uid int64, p model.ProfileUpdate) error {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	if p.Phone != nil {
		set["phone"] = *p.Phone
	}
	if p.Address != nil {
		set["address"] = *p.Address
	}
	if len(set) == 0 {
		return nil
	}
	_, err := r.users.UpdateOne(ctx, bson.M{"uid": uid}, bson.M{"$set": set})
	return err
}

// UpdatePassword overwrites the stored password hash.
func (r *UserRepo) UpdatePassword(ctx context.Context, uid int64, hash string) error {
	_, err := r.users.UpdateOne(ctx, bson.M{"uid": uid}, bson.M{"$set": bson.M{"password": hash}})
	return err
}
