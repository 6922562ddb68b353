package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultProfilePicture is assigned when an account is created without one.
	DefaultProfilePicture = "https://static.socialnet.app/avatars/default.png"

	MaxNameLength = 100
	MaxBioLength  = 500

	MinPasswordLength = 6
)

type Account struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string    `json:"name" gorm:"not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash   string    `json:"-" gorm:"not null"`
	Bio            string    `json:"bio"`
	ProfilePicture string    `json:"profilePicture"`
	Website        string    `json:"website"`
	Location       string    `json:"location"`
	IsPrivate      bool      `json:"isPrivate" gorm:"default:false"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Profile is the outward representation of an account. It is a separate type
// rather than a scrubbed Account so the password hash can never leak through
// serialization.
type Profile struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Bio            string      `json:"bio"`
	ProfilePicture string      `json:"profilePicture"`
	Website        string      `json:"website,omitempty"`
	Location       string      `json:"location,omitempty"`
	IsPrivate      bool        `json:"isPrivate"`
	Followers      []uuid.UUID `json:"followers"`
	Following      []uuid.UUID `json:"following"`
	FollowerCount  int         `json:"followerCount"`
	FollowingCount int         `json:"followingCount"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// NewProfile projects an account plus its relationship sets into the outward
// representation.
func NewProfile(a *Account, followers, following []uuid.UUID) *Profile {
	if followers == nil {
		followers = []uuid.UUID{}
	}
	if following == nil {
		following = []uuid.UUID{}
	}
	return &Profile{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		Bio:            a.Bio,
		ProfilePicture: a.ProfilePicture,
		Website:        a.Website,
		Location:       a.Location,
		IsPrivate:      a.IsPrivate,
		Followers:      followers,
		Following:      following,
		FollowerCount:  len(followers),
		FollowingCount: len(following),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
