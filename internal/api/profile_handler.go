package api

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pradeepaul/devConnector/internal/github"
	"github.com/pradeepaul/devConnector/internal/model"
	"github.com/pradeepaul/devConnector/internal/service"
)

type ProfileHandler struct {
	profileService service.ProfileService
	githubClient   *github.Client
	validate       *validator.Validate
}

func NewProfileHandler(profileService service.ProfileService, githubClient *github.Client) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		githubClient:   githubClient,
		validate:       validator.New(),
	}
}

func (h *ProfileHandler) GetMine(c *fiber.Ctx) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": err.Error()})
	}

	profile, err := h.profileService.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoProfile) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "There is no profile for this user"})
		}

		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

type UpsertProfileRequest struct {
	Status         string  `json:"status" validate:"required"`
	Skills         string  `json:"skills" validate:"required"`
	Company        *string `json:"company,omitempty"`
	Website        *string `json:"website,omitempty"`
	Location       *string `json:"location,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	GithubUsername *string `json:"githubusername,omitempty"`
	Youtube        *string `json:"youtube,omitempty"`
	Twitter        *string `json:"twitter,omitempty"`
	Facebook       *string `json:"facebook,omitempty"`
	Linkedin       *string `json:"linkedin,omitempty"`
	Instagram      *string `json:"instagram,omitempty"`
}

var upsertProfileMessages = map[string]string{
	"Status": "Status is required",
	"Skills": "skills is required",
}

func (h *ProfileHandler) Upsert(c *fiber.Ctx) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": err.Error()})
	}

	var request UpsertProfileRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err, upsertProfileMessages)})
	}

	profile, err := h.profileService.Upsert(c.Context(), userID, service.ProfileInput{
		Status:         request.Status,
		Skills:         request.Skills,
		Company:        request.Company,
		Website:        request.Website,
		Location:       request.Location,
		Bio:            request.Bio,
		GithubUsername: request.GithubUsername,
		Youtube:        request.Youtube,
		Twitter:        request.Twitter,
		Facebook:       request.Facebook,
		Linkedin:       request.Linkedin,
		Instagram:      request.Instagram,
	})

	if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *ProfileHandler) ListAll(c *fiber.Ctx) error {
	profiles, err := h.profileService.ListAll(c.Context())
	if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profiles)
}

func (h *ProfileHandler) GetByUserID(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Profile not found"})
	}

	profile, err := h.profileService.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoProfile) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Profile not found"})
		}

		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *ProfileHandler) DeleteAccount(c *fiber.Ctx) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": err.Error()})
	}

	if err := h.profileService.DeleteAccount(c.Context(), userID); err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "User deleted"})
}

type AddExperienceRequest struct {
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Location    *string    `json:"location,omitempty"`
	From        time.Time  `json:"from" validate:"required"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description *string    `json:"description,omitempty"`
}

var addExperienceMessages = map[string]string{
	"Title":   "Title is required",
	"Company": "Company is required",
	"From":    "From date is required",
}

func (h *ProfileHandler) AddExperience(c *fiber.Ctx) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": err.Error()})
	}

	var request AddExperienceRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err, addExperienceMessages)})
	}

	exp := &model.Experience{
		Title:       request.Title,
		Company:     request.Company,
		Location:    request.Location,
		From:        request.From,
		To:          request.To,
		Current:     request.Current,
		Description: request.Description,
	}

	profile, err := h.profileService.AddExperience(c.Context(), userID, exp)
	if err != nil {
		if errors.Is(err, service.ErrNoProfile) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "There is no profile for this user"})
		}

		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

// RemoveExperience deletes the entry matching the path id. An id that does
// not parse or does not exist leaves the profile untouched.
func (h *ProfileHandler) RemoveExperience(c *fiber.Ctx) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": err.Error()})
	}

	expID, err := uuid.Parse(c.Params("exp_id"))
	if err != nil {
		profile, err := h.profileService.GetByUserID(c.Context(), userID)
		if err != nil {
			return h.profileError(c, err)
		}

		return c.Status(fiber.StatusOK).JSON(profile)
	}

	profile, err := h.profileService.RemoveExperience(c.Context(), userID, expID)
	if err != nil {
		return h.profileError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

type AddEducationRequest struct {
	School       string     `json:"school" validate:"required"`
	Degree       string     `json:"degree" validate:"required"`
	FieldOfStudy string     `json:"fieldofstudy" validate:"required"`
	From         time.Time  `json:"from" validate:"required"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  *string    `json:"description,omitempty"`
}

var addEducationMessages = map[string]string{
	"School":       "school is required",
	"Degree":       "degree is required",
	"FieldOfStudy": "fieldofstudy is required",
	"From":         "From date is required",
}

func (h *ProfileHandler) AddEducation(c *fiber.Ctx) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": err.Error()})
	}

	var request AddEducationRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err, addEducationMessages)})
	}

	edu := &model.Education{
		School:       request.School,
		Degree:       request.Degree,
		FieldOfStudy: request.FieldOfStudy,
		From:         request.From,
		To:           request.To,
		Current:      request.Current,
		Description:  request.Description,
	}

	profile, err := h.profileService.AddEducation(c.Context(), userID, edu)
	if err != nil {
		if errors.Is(err, service.ErrNoProfile) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "There is no profile for this user"})
		}

		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *ProfileHandler) RemoveEducation(c *fiber.Ctx) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": err.Error()})
	}

	eduID, err := uuid.Parse(c.Params("edu_id"))
	if err != nil {
		profile, err := h.profileService.GetByUserID(c.Context(), userID)
		if err != nil {
			return h.profileError(c, err)
		}

		return c.Status(fiber.StatusOK).JSON(profile)
	}

	profile, err := h.profileService.RemoveEducation(c.Context(), userID, eduID)
	if err != nil {
		return h.profileError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

// GithubRepos passes the upstream repository listing through untouched.
func (h *ProfileHandler) GithubRepos(c *fiber.Ctx) error {
	repos, err := h.githubClient.ListRecentRepos(c.Context(), c.Params("username"))
	if err != nil {
		if errors.Is(err, github.ErrNoProfile) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "No github profile found"})
		}

		return serverError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(repos)
}

func (h *ProfileHandler) profileError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNoProfile) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "There is no profile for this user"})
	}

	return serverError(c, err)
}
