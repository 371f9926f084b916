package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile is the candidate side of compatibility scoring: the skills a user
// claims, their education tag, and years of experience.
type Profile struct {
	UserID    uuid.UUID
	SkillIDs  []uuid.UUID
	Education string
	YearsExp  int
	City      string
	State     string
}
