package entity

import "time"

// User is the business-agnostic identity record kept for each account. The id
// is supplied externally by the identity provider (the token's subject), not
// allocated by this service, and is unique across the user collection.
type User struct {
	ID        string
	Username  string
	Email     string
	CreatedAt time.Time
}
