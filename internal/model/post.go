package model

import (
	"time"

	"github.com/google/uuid"
)

// Post carries a snapshot of the author's name and avatar taken at creation
// time; later user edits do not propagate to existing posts.
type Post struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user"`
	Text      string    `db:"text" json:"text"`
	Name      string    `db:"name" json:"name"`
	AvatarURL string    `db:"avatar_url" json:"avatar"`
	CreatedAt time.Time `db:"created_at" json:"date"`

	Likes    []Like    `db:"-" json:"likes"`
	Comments []Comment `db:"-" json:"comments"`
}

type Like struct {
	PostID    uuid.UUID `db:"post_id" json:"-"`
	UserID    uuid.UUID `db:"user_id" json:"user"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}

type Comment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PostID    uuid.UUID `db:"post_id" json:"-"`
	UserID    uuid.UUID `db:"user_id" json:"user"`
	Text      string    `db:"text" json:"text"`
	Name      string    `db:"name" json:"name"`
	AvatarURL string    `db:"avatar_url" json:"avatar"`
	CreatedAt time.Time `db:"created_at" json:"date"`
}
