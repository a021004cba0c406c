package service_test

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pradeepaul/devConnector/internal/model"
	"github.com/pradeepaul/devConnector/internal/repository"
)

// in-memory repository doubles, wired through the same interfaces the
// Postgres implementations satisfy

type nopPublisher struct{}

func (nopPublisher) PublishUserRegistered(*model.User) error { return nil }
func (nopPublisher) PublishPostCreated(*model.Post) error    { return nil }

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*model.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) (uuid.UUID, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return uuid.Nil, &pgconn.PgError{Code: "23505"}
		}
	}

	id := uuid.New()
	stored := *user
	stored.ID = id
	stored.CreatedAt = time.Now()
	r.users[id] = &stored
	return id, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

type fakeProfileRepo struct {
	profiles    map[uuid.UUID]*model.Profile // keyed by user id
	lastUpdate  *repository.ProfileUpdate
	experiences map[uuid.UUID][]model.Experience // keyed by profile id
	educations  map[uuid.UUID][]model.Education
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles:    map[uuid.UUID]*model.Profile{},
		experiences: map[uuid.UUID][]model.Experience{},
		educations:  map[uuid.UUID][]model.Education{},
	}
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *model.Profile) (*model.Profile, error) {
	stored := *profile
	stored.ID = uuid.New()
	stored.Experience = []model.Experience{}
	stored.Education = []model.Education{}
	r.profiles[profile.UserID] = &stored
	return &stored, nil
}

func (r *fakeProfileRepo) Update(_ context.Context, userID uuid.UUID, fields repository.ProfileUpdate) error {
	r.lastUpdate = &fields
	profile := r.profiles[userID]

	if fields.Status != nil {
		profile.Status = *fields.Status
	}
	if fields.Skills != nil {
		profile.Skills = fields.Skills
	}
	if fields.Company != nil {
		profile.Company = fields.Company
	}
	if fields.Location != nil {
		profile.Location = fields.Location
	}

	return nil
}

func (r *fakeProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*model.Profile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}

	copied := *profile
	copied.Experience = append([]model.Experience{}, r.experiences[profile.ID]...)
	copied.Education = append([]model.Education{}, r.educations[profile.ID]...)
	return &copied, nil
}

func (r *fakeProfileRepo) ListAll(_ context.Context) ([]model.Profile, error) {
	all := []model.Profile{}
	for _, profile := range r.profiles {
		all = append(all, *profile)
	}
	return all, nil
}

func (r *fakeProfileRepo) AddExperience(_ context.Context, exp *model.Experience) error {
	exp.ID = uuid.New()
	exp.CreatedAt = time.Now()
	r.experiences[exp.ProfileID] = append([]model.Experience{*exp}, r.experiences[exp.ProfileID]...)
	return nil
}

func (r *fakeProfileRepo) RemoveExperience(_ context.Context, profileID, expID uuid.UUID) error {
	entries := r.experiences[profileID]
	for i := range entries {
		if entries[i].ID == expID {
			r.experiences[profileID] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeProfileRepo) AddEducation(_ context.Context, edu *model.Education) error {
	edu.ID = uuid.New()
	edu.CreatedAt = time.Now()
	r.educations[edu.ProfileID] = append([]model.Education{*edu}, r.educations[edu.ProfileID]...)
	return nil
}

func (r *fakeProfileRepo) RemoveEducation(_ context.Context, profileID, eduID uuid.UUID) error {
	entries := r.educations[profileID]
	for i := range entries {
		if entries[i].ID == eduID {
			r.educations[profileID] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakePostRepo struct {
	posts map[uuid.UUID]*model.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[uuid.UUID]*model.Post{}}
}

func (r *fakePostRepo) Create(_ context.Context, post *model.Post) (*model.Post, error) {
	stored := *post
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.Likes = []model.Like{}
	stored.Comments = []model.Comment{}
	r.posts[stored.ID] = &stored
	return &stored, nil
}

func (r *fakePostRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, nil
	}

	copied := *post
	copied.Likes = append([]model.Like{}, post.Likes...)
	copied.Comments = append([]model.Comment{}, post.Comments...)
	return &copied, nil
}

func (r *fakePostRepo) ListAll(_ context.Context) ([]model.Post, error) {
	all := []model.Post{}
	for _, post := range r.posts {
		all = append(all, *post)
	}
	return all, nil
}

func (r *fakePostRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) AddLike(_ context.Context, postID, userID uuid.UUID) error {
	post := r.posts[postID]
	post.Likes = append([]model.Like{{PostID: postID, UserID: userID, CreatedAt: time.Now()}}, post.Likes...)
	return nil
}

func (r *fakePostRepo) RemoveLike(_ context.Context, postID, userID uuid.UUID) error {
	post := r.posts[postID]
	for i := range post.Likes {
		if post.Likes[i].UserID == userID {
			post.Likes = append(post.Likes[:i], post.Likes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakePostRepo) ListLikes(_ context.Context, postID uuid.UUID) ([]model.Like, error) {
	return append([]model.Like{}, r.posts[postID].Likes...), nil
}

func (r *fakePostRepo) AddComment(_ context.Context, comment *model.Comment) error {
	comment.ID = uuid.New()
	comment.CreatedAt = time.Now()
	post := r.posts[comment.PostID]
	post.Comments = append([]model.Comment{*comment}, post.Comments...)
	return nil
}

func (r *fakePostRepo) RemoveComment(_ context.Context, postID, commentID uuid.UUID) error {
	post := r.posts[postID]
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			post.Comments = append(post.Comments[:i], post.Comments[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakePostRepo) ListComments(_ context.Context, postID uuid.UUID) ([]model.Comment, error) {
	return append([]model.Comment{}, r.posts[postID].Comments...), nil
}
