// server/internal/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserCompany struct {
	Name     string `bson:"name" json:"name"`
	Industry string `bson:"industry,omitempty" json:"industry"`
}

type UserProfile struct {
	FirstName string `bson:"firstName,omitempty" json:"firstName"`
	LastName  string `bson:"lastName,omitempty" json:"lastName"`
	Phone     string `bson:"phone,omitempty" json:"phone"`
}

type UserPreferences struct {
	Theme string `bson:"theme,omitempty" json:"theme"` // "light" or "dark"
}

// User matches the account document in MongoDB. The password hash is
// never serialized to JSON.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username    string             `bson:"username" json:"username"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"`
	Role        string             `bson:"role" json:"role"` // "retailer" or "admin"
	Company     UserCompany        `bson:"company" json:"company"`
	Profile     UserProfile        `bson:"profile,omitempty" json:"profile"`
	Preferences UserPreferences    `bson:"preferences,omitempty" json:"preferences"`
	LastLogin   *time.Time         `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
