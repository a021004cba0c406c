package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pradeepaul/devConnector/internal/service"
)

type PostHandler struct {
	postService service.PostService
	validate    *validator.Validate
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
		validate:    validator.New(),
	}
}

type CreatePostRequest struct {
	Text string `json:"text" validate:"required"`
}

var postTextMessages = map[string]string{
	"Text": "Text is required",
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": err.Error()})
	}

	var request CreatePostRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err, postTextMessages)})
	}

	post, err := h.postService.CreatePost(c.Context(), userID, request.Text)
	if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) List(c *fiber.Ctx) error {
	posts, err := h.postService.ListPosts(c.Context())
	if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *PostHandler) Get(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Post not found"})
	}

	post, err := h.postService.GetPost(c.Context(), postID)
	if err != nil {
		return h.postError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": err.Error()})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Post not found"})
	}

	if err := h.postService.DeletePost(c.Context(), postID, userID); err != nil {
		return h.postError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "post removed"})
}

func (h *PostHandler) Like(c *fiber.Ctx) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": err.Error()})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Post not found"})
	}

	likes, err := h.postService.LikePost(c.Context(), postID, userID)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyLiked) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "post already liked"})
		}

		return h.postError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(likes)
}

func (h *PostHandler) Unlike(c *fiber.Ctx) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": err.Error()})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Post not found"})
	}

	likes, err := h.postService.UnlikePost(c.Context(), postID, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotLiked) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "post has not yet been liked"})
		}

		return h.postError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(likes)
}

func (h *PostHandler) AddComment(c *fiber.Ctx) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": err.Error()})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Post not found"})
	}

	var request CreatePostRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err, postTextMessages)})
	}

	comments, err := h.postService.AddComment(c.Context(), postID, userID, request.Text)
	if err != nil {
		return h.postError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(comments)
}

func (h *PostHandler) RemoveComment(c *fiber.Ctx) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": err.Error()})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Post not found"})
	}

	commentID, err := uuid.Parse(c.Params("comment_id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "comment does not exist"})
	}

	comments, err := h.postService.RemoveComment(c.Context(), postID, commentID, userID)
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "comment does not exist"})
		}

		return h.postError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(comments)
}

func (h *PostHandler) postError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Post not found"})
	case errors.Is(err, service.ErrNotPostOwner), errors.Is(err, service.ErrNotCommentOwner):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "User not authorized"})
	default:
		return serverError(c, err)
	}
}
