package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Contact is one entry in a user's address book, stored in the `contacts`
// collection. It is owned by exactly one user (OwnerUID) and is independent
// of whether the referenced person is registered: add-friend copies a user's
// fields into a contact as a snapshot with no live link back. The ObjectID
// marshals to its hex form in JSON, so clients always see a string id.
type Contact struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerUID int64              `bson:"owner_uid" json:"owner_uid"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Phone    string             `bson:"phone" json:"phone"`
	Address  string             `bson:"address" json:"address"`
}

// ContactFields is the full replacement set applied by a contact update.
// Optional fields default to the empty string.
type ContactFields struct {
	Name    string
	Email   string
	Phone   string
	Address string
}
