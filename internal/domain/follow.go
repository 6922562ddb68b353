package domain

import (
	"time"

	"github.com/google/uuid"
)

// Follow is one edge of the social graph: follower follows followee. The
// composite primary key makes the edge unique, so both an account's follower
// set and its following set are projections of the same rows and can never
// disagree with each other.
type Follow struct {
	FollowerID uuid.UUID `json:"followerId" gorm:"type:uuid;primaryKey"`
	FolloweeID uuid.UUID `json:"followeeId" gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time `json:"createdAt"`
}
