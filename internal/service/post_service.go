package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pradeepaul/devConnector/internal/events"
	"github.com/pradeepaul/devConnector/internal/model"
	"github.com/pradeepaul/devConnector/internal/repository"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrNotPostOwner    = errors.New("user is not the post owner")
	ErrAlreadyLiked    = errors.New("post already liked by this user")
	ErrNotLiked        = errors.New("post has not been liked by this user")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("user is not the comment author")
)

type PostService interface {
	CreatePost(ctx context.Context, userID uuid.UUID, text string) (*model.Post, error)
	ListPosts(ctx context.Context) ([]model.Post, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*model.Post, error)
	DeletePost(ctx context.Context, postID, callerID uuid.UUID) error
	LikePost(ctx context.Context, postID, callerID uuid.UUID) ([]model.Like, error)
	UnlikePost(ctx context.Context, postID, callerID uuid.UUID) ([]model.Like, error)
	AddComment(ctx context.Context, postID, callerID uuid.UUID, text string) ([]model.Comment, error)
	RemoveComment(ctx context.Context, postID, commentID, callerID uuid.UUID) ([]model.Comment, error)
}

type postService struct {
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	publisher events.EventPublisher
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, publisher events.EventPublisher) PostService {
	return &postService{
		postRepo:  postRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

// CreatePost snapshots the caller's name and avatar onto the post; the copy
// is intentionally not kept in sync with later user changes.
func (s *postService) CreatePost(ctx context.Context, userID uuid.UUID, text string) (*model.Post, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		UserID:    userID,
		Text:      text,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
	}

	created, err := s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	go s.publisher.PublishPostCreated(created)

	return created, nil
}

func (s *postService) ListPosts(ctx context.Context) ([]model.Post, error) {
	return s.postRepo.ListAll(ctx)
}

func (s *postService) GetPost(ctx context.Context, postID uuid.UUID) (*model.Post, error) {
	post, err := s.postRepo.FindByID(ctx, postID)

	if err != nil {
		return nil, err
	}

	if post == nil {
		return nil, ErrPostNotFound
	}

	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, postID, callerID uuid.UUID) error {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != callerID {
		return ErrNotPostOwner
	}

	return s.postRepo.Delete(ctx, postID)
}

func (s *postService) LikePost(ctx context.Context, postID, callerID uuid.UUID) ([]model.Like, error) {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if hasLike(post.Likes, callerID) {
		return nil, ErrAlreadyLiked
	}

	if err := s.postRepo.AddLike(ctx, postID, callerID); err != nil {
		return nil, err
	}

	return s.postRepo.ListLikes(ctx, postID)
}

func (s *postService) UnlikePost(ctx context.Context, postID, callerID uuid.UUID) ([]model.Like, error) {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !hasLike(post.Likes, callerID) {
		return nil, ErrNotLiked
	}

	if err := s.postRepo.RemoveLike(ctx, postID, callerID); err != nil {
		return nil, err
	}

	return s.postRepo.ListLikes(ctx, postID)
}

func (s *postService) AddComment(ctx context.Context, postID, callerID uuid.UUID, text string) ([]model.Comment, error) {
	if _, err := s.GetPost(ctx, postID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		PostID:    postID,
		UserID:    callerID,
		Text:      text,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
	}

	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	return s.postRepo.ListComments(ctx, postID)
}

// RemoveComment allows only the comment's author to delete it.
func (s *postService) RemoveComment(ctx context.Context, postID, commentID, callerID uuid.UUID) ([]model.Comment, error) {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	var target *model.Comment
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			target = &post.Comments[i]
			break
		}
	}

	if target == nil {
		return nil, ErrCommentNotFound
	}

	if target.UserID != callerID {
		return nil, ErrNotCommentOwner
	}

	if err := s.postRepo.RemoveComment(ctx, postID, commentID); err != nil {
		return nil, err
	}

	return s.postRepo.ListComments(ctx, postID)
}

func hasLike(likes []model.Like, userID uuid.UUID) bool {
	for _, like := range likes {
		if like.UserID == userID {
			return true
		}
	}

	return false
}
