package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/pradeepaul/devConnector/internal/model"
	"github.com/pradeepaul/devConnector/internal/repository"
)

var ErrNoProfile = errors.New("no profile exists for this user")

// ProfileInput is the sparse upsert payload: nil fields are left untouched
// when a profile already exists.
type ProfileInput struct {
	Status         string
	Skills         string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	Youtube        *string
	Twitter        *string
	Facebook       *string
	Linkedin       *string
	Instagram      *string
}

type ProfileService interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	Upsert(ctx context.Context, userID uuid.UUID, input ProfileInput) (*model.Profile, error)
	ListAll(ctx context.Context) ([]model.Profile, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
	AddExperience(ctx context.Context, userID uuid.UUID, exp *model.Experience) (*model.Profile, error)
	RemoveExperience(ctx context.Context, userID, expID uuid.UUID) (*model.Profile, error)
	AddEducation(ctx context.Context, userID uuid.UUID, edu *model.Education) (*model.Profile, error)
	RemoveEducation(ctx context.Context, userID, eduID uuid.UUID) (*model.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (s *profileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)

	if err != nil {
		return nil, err
	}

	if profile == nil {
		return nil, ErrNoProfile
	}

	return profile, nil
}

func (s *profileService) Upsert(ctx context.Context, userID uuid.UUID, input ProfileInput) (*model.Profile, error) {
	skills := splitSkills(input.Skills)
	status := input.Status

	existing, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		profile := &model.Profile{
			UserID:         userID,
			Status:         status,
			Skills:         skills,
			Company:        input.Company,
			Website:        input.Website,
			Location:       input.Location,
			Bio:            input.Bio,
			GithubUsername: input.GithubUsername,
			Youtube:        input.Youtube,
			Twitter:        input.Twitter,
			Facebook:       input.Facebook,
			Linkedin:       input.Linkedin,
			Instagram:      input.Instagram,
		}

		return s.profileRepo.Create(ctx, profile)
	}

	fields := repository.ProfileUpdate{
		Status:         &status,
		Skills:         skills,
		Company:        input.Company,
		Website:        input.Website,
		Location:       input.Location,
		Bio:            input.Bio,
		GithubUsername: input.GithubUsername,
		Youtube:        input.Youtube,
		Twitter:        input.Twitter,
		Facebook:       input.Facebook,
		Linkedin:       input.Linkedin,
		Instagram:      input.Instagram,
	}

	if err := s.profileRepo.Update(ctx, userID, fields); err != nil {
		return nil, err
	}

	return s.profileRepo.FindByUserID(ctx, userID)
}

func (s *profileService) ListAll(ctx context.Context) ([]model.Profile, error) {
	return s.profileRepo.ListAll(ctx)
}

// DeleteAccount removes the user row; the profile, experience and education
// entries follow through the cascade, so the delete cannot strand a profile.
func (s *profileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return s.userRepo.Delete(ctx, userID)
}

func (s *profileService) AddExperience(ctx context.Context, userID uuid.UUID, exp *model.Experience) (*model.Profile, error) {
	profile, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp.ProfileID = profile.ID
	if err := s.profileRepo.AddExperience(ctx, exp); err != nil {
		return nil, err
	}

	return s.profileRepo.FindByUserID(ctx, userID)
}

func (s *profileService) RemoveExperience(ctx context.Context, userID, expID uuid.UUID) (*model.Profile, error) {
	profile, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.RemoveExperience(ctx, profile.ID, expID); err != nil {
		return nil, err
	}

	return s.profileRepo.FindByUserID(ctx, userID)
}

func (s *profileService) AddEducation(ctx context.Context, userID uuid.UUID, edu *model.Education) (*model.Profile, error) {
	profile, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	edu.ProfileID = profile.ID
	if err := s.profileRepo.AddEducation(ctx, edu); err != nil {
		return nil, err
	}

	return s.profileRepo.FindByUserID(ctx, userID)
}

func (s *profileService) RemoveEducation(ctx context.Context, userID, eduID uuid.UUID) (*model.Profile, error) {
	profile, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.RemoveEducation(ctx, profile.ID, eduID); err != nil {
		return nil, err
	}

	return s.profileRepo.FindByUserID(ctx, userID)
}

// splitSkills turns the comma-separated skills string into a trimmed ordered
// list, dropping empty segments.
func splitSkills(raw string) model.StringList {
	parts := strings.Split(raw, ",")
	skills := model.StringList{}

	for _, part := range parts {
		skill := strings.TrimSpace(part)
		if skill != "" {
			skills = append(skills, skill)
		}
	}

	return skills
}
