package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pradeepaul/devConnector/internal/s3"
	"github.com/pradeepaul/devConnector/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
	presigner   *s3.AvatarPresigner
	validate    *validator.Validate
}

func NewAuthHandler(authService service.AuthService, presigner *s3.AvatarPresigner) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		presigner:   presigner,
		validate:    validator.New(),
	}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

var registerMessages = map[string]string{
	"Name":     "name is required",
	"Email":    "please enter a valid email",
	"Password": "please enter password min of 6 or more chars",
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var request RegisterRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err, registerMessages)})
	}

	tokenString, err := h.authService.RegisterUser(c.Context(), request.Name, request.Email, request.Password)

	if err != nil {
		var pgErr *pgconn.PgError

		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "user already exists"})
		}

		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": tokenString})
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

var loginMessages = map[string]string{
	"Email":    "please enter a valid email",
	"Password": "password is required",
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var request LoginRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err, loginMessages)})
	}

	tokenString, err := h.authService.LoginUser(c.Context(), request.Email, request.Password)

	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "invalid credentials"})
		}

		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": tokenString})
}

func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": err.Error()})
	}

	user, err := h.authService.CurrentUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "User not found"})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// AvatarUploadURL hands out a presigned PUT for a custom avatar image.
func (h *AuthHandler) AvatarUploadURL(c *fiber.Ctx) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": err.Error()})
	}

	objectKey := "user-avatars/" + userID.String() + "/" + uuid.New().String() + ".jpg"

	uploadURL, err := h.presigner.PresignUpload(objectKey)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"upload_url": uploadURL,
		"avatar_url": h.presigner.ObjectURL(objectKey),
	})
}
