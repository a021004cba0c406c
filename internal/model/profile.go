package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// StringList is an ordered list of strings persisted as a JSONB column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported source type for StringList")
	}
}

type Profile struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	UserID         uuid.UUID  `db:"user_id" json:"user"`
	Company        *string    `db:"company" json:"company,omitempty"`
	Website        *string    `db:"website" json:"website,omitempty"`
	Location       *string    `db:"location" json:"location,omitempty"`
	Status         string     `db:"status" json:"status"`
	Bio            *string    `db:"bio" json:"bio,omitempty"`
	GithubUsername *string    `db:"github_username" json:"githubusername,omitempty"`
	Skills         StringList `db:"skills" json:"skills"`
	Youtube        *string    `db:"youtube" json:"youtube,omitempty"`
	Twitter        *string    `db:"twitter" json:"twitter,omitempty"`
	Facebook       *string    `db:"facebook" json:"facebook,omitempty"`
	Linkedin       *string    `db:"linkedin" json:"linkedin,omitempty"`
	Instagram      *string    `db:"instagram" json:"instagram,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`

	// Snapshot of the owning user, filled by joined queries.
	OwnerName   *string `db:"owner_name" json:"name,omitempty"`
	OwnerAvatar *string `db:"owner_avatar" json:"avatar,omitempty"`

	Experience []Experience `db:"-" json:"experience"`
	Education  []Education  `db:"-" json:"education"`
}

type Experience struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	ProfileID   uuid.UUID  `db:"profile_id" json:"-"`
	Title       string     `db:"title" json:"title"`
	Company     string     `db:"company" json:"company"`
	Location    *string    `db:"location" json:"location,omitempty"`
	From        time.Time  `db:"from_date" json:"from"`
	To          *time.Time `db:"to_date" json:"to,omitempty"`
	Current     bool       `db:"current" json:"current"`
	Description *string    `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"-"`
}

type Education struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	ProfileID    uuid.UUID  `db:"profile_id" json:"-"`
	School       string     `db:"school" json:"school"`
	Degree       string     `db:"degree" json:"degree"`
	FieldOfStudy string     `db:"field_of_study" json:"fieldofstudy"`
	From         time.Time  `db:"from_date" json:"from"`
	To           *time.Time `db:"to_date" json:"to,omitempty"`
	Current      bool       `db:"current" json:"current"`
	Description  *string    `db:"description" json:"description,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"-"`
}
