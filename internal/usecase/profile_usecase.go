package usecase

import (
	"context"
	"errors"

	"jobscout/internal/domain/education"
	"jobscout/internal/domain/user"
	"jobscout/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidProfile = errors.New("invalid profile")
)

// Years of experience above this are almost always data-entry noise.
const maxProfileYears = 60

type ProfileUpdateInput struct {
	SkillIDs  []uuid.UUID
	Education string
	YearsExp  int
	City      string
	State     string
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileUpdateInput) (user.Profile, error)
}

type Profile struct {
	profiles repository.ProfileRepository
}

func NewProfileUsecase(profiles repository.ProfileRepository) *Profile {
	return &Profile{profiles: profiles}
}

func (u *Profile) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrUnauthorized
	}
	p, err := u.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.Profile{}, ErrUnauthorized
		}
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Profile) UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileUpdateInput) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrUnauthorized
	}
	if !education.Known(in.Education) {
		return user.Profile{}, ErrInvalidProfile
	}
	if in.YearsExp < 0 || in.YearsExp > maxProfileYears {
		return user.Profile{}, ErrInvalidProfile
	}

	skillIDs := make([]uuid.UUID, 0, len(in.SkillIDs))
	seen := make(map[uuid.UUID]struct{}, len(in.SkillIDs))
	for _, id := range in.SkillIDs {
		if id == uuid.Nil {
			return user.Profile{}, ErrInvalidProfile
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		skillIDs = append(skillIDs, id)
	}

	p := user.Profile{
		UserID:    userID,
		SkillIDs:  skillIDs,
		Education: in.Education,
		YearsExp:  in.YearsExp,
		City:      in.City,
		State:     in.State,
	}
	if err := u.profiles.UpdateProfile(ctx, p); err != nil {
		return user.Profile{}, ErrInternal
	}
	return p, nil
}
