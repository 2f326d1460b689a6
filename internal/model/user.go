package model

// User represents a registered account stored in the `users` collection.
// The uid is a process-wide sequence value minted from the counters
// collection; it is never reused. Email and phone are unique across users.
// Password holds a bcrypt hash, never the plain text, and is excluded from
// JSON output.
type User struct {
	UID      int64  `bson:"uid" json:"uid"`
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`
	Password string `bson:"password" json:"-"`
	Address  string `bson:"address" json:"address"`
}

// ProfileUpdate carries a partial profile change. A nil field was not
// supplied by the client and must be left untouched; a pointer to an empty
// string is a real value and clears the field.
type ProfileUpdate struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}
