package dto

import "github.com/google/uuid"

type ProfileResponse struct {
	UserID    uuid.UUID   `json:"user_id"`
	SkillIDs  []uuid.UUID `json:"skill_ids"`
	Education string      `json:"education"`
	YearsExp  int         `json:"years_exp"`
	City      string      `json:"city"`
	State     string      `json:"state"`
}
