package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pradeepaul/devConnector/internal/model"
)

// ProfileUpdate is a sparse field set: nil pointers are left untouched on
// update instead of being nulled out.
type ProfileUpdate struct {
	Company        *string
	Website        *string
	Location       *string
	Status         *string
	Bio            *string
	GithubUsername *string
	Skills         model.StringList
	Youtube        *string
	Twitter        *string
	Facebook       *string
	Linkedin       *string
	Instagram      *string
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) (*model.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, fields ProfileUpdate) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	ListAll(ctx context.Context) ([]model.Profile, error)
	AddExperience(ctx context.Context, exp *model.Experience) error
	RemoveExperience(ctx context.Context, profileID, expID uuid.UUID) error
	AddEducation(ctx context.Context, edu *model.Education) error
	RemoveEducation(ctx context.Context, profileID, eduID uuid.UUID) error
}

type postgresProfileRepository struct {
	db *sqlx.DB
}

func NewPostgresProfileRepository(db *sqlx.DB) ProfileRepository {
	return &postgresProfileRepository{db: db}
}

const profileColumns = `
	p.id, p.user_id, p.company, p.website, p.location, p.status, p.bio,
	p.github_username, p.skills, p.youtube, p.twitter, p.facebook,
	p.linkedin, p.instagram, p.created_at, p.updated_at,
	u.name AS owner_name, u.avatar_url AS owner_avatar
`

func (r *postgresProfileRepository) Create(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	query := `
		INSERT INTO profiles (user_id, company, website, location, status, bio,
			github_username, skills, youtube, twitter, facebook, linkedin, instagram)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		profile.UserID, profile.Company, profile.Website, profile.Location,
		profile.Status, profile.Bio, profile.GithubUsername, profile.Skills,
		profile.Youtube, profile.Twitter, profile.Facebook, profile.Linkedin,
		profile.Instagram,
	)
	err := row.Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		return nil, err
	}

	if profile.Experience == nil {
		profile.Experience = []model.Experience{}
	}
	if profile.Education == nil {
		profile.Education = []model.Education{}
	}

	return profile, nil
}

func (r *postgresProfileRepository) Update(ctx context.Context, userID uuid.UUID, fields ProfileUpdate) error {
	var setClauses []string
	var args []interface{}
	argId := 1

	add := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argId))
		args = append(args, value)
		argId++
	}

	if fields.Company != nil {
		add("company", *fields.Company)
	}
	if fields.Website != nil {
		add("website", *fields.Website)
	}
	if fields.Location != nil {
		add("location", *fields.Location)
	}
	if fields.Status != nil {
		add("status", *fields.Status)
	}
	if fields.Bio != nil {
		add("bio", *fields.Bio)
	}
	if fields.GithubUsername != nil {
		add("github_username", *fields.GithubUsername)
	}
	if fields.Skills != nil {
		add("skills", fields.Skills)
	}
	if fields.Youtube != nil {
		add("youtube", *fields.Youtube)
	}
	if fields.Twitter != nil {
		add("twitter", *fields.Twitter)
	}
	if fields.Facebook != nil {
		add("facebook", *fields.Facebook)
	}
	if fields.Linkedin != nil {
		add("linkedin", *fields.Linkedin)
	}
	if fields.Instagram != nil {
		add("instagram", *fields.Instagram)
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = now()")

	query := fmt.Sprintf("UPDATE profiles SET %s WHERE user_id = $%d", strings.Join(setClauses, ", "), argId)
	args = append(args, userID)

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *postgresProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	query := `SELECT ` + profileColumns + ` FROM profiles p JOIN users u ON p.user_id = u.id WHERE p.user_id = $1`
	err := r.db.GetContext(ctx, &profile, query, userID)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	if err := r.attachEntries(ctx, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *postgresProfileRepository) ListAll(ctx context.Context) ([]model.Profile, error) {
	profiles := []model.Profile{}
	query := `SELECT ` + profileColumns + ` FROM profiles p JOIN users u ON p.user_id = u.id ORDER BY p.created_at DESC`
	err := r.db.SelectContext(ctx, &profiles, query)

	if err != nil {
		return nil, err
	}

	for i := range profiles {
		if err := r.attachEntries(ctx, &profiles[i]); err != nil {
			return nil, err
		}
	}

	return profiles, nil
}

// attachEntries loads the experience and education lists, newest first, which
// matches the prepend-on-add ordering.
func (r *postgresProfileRepository) attachEntries(ctx context.Context, profile *model.Profile) error {
	profile.Experience = []model.Experience{}
	query := `
		SELECT id, profile_id, title, company, location, from_date, to_date, current, description, created_at
		FROM experiences WHERE profile_id = $1 ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &profile.Experience, query, profile.ID); err != nil {
		return err
	}

	profile.Education = []model.Education{}
	query = `
		SELECT id, profile_id, school, degree, field_of_study, from_date, to_date, current, description, created_at
		FROM educations WHERE profile_id = $1 ORDER BY created_at DESC
	`
	return r.db.SelectContext(ctx, &profile.Education, query, profile.ID)
}

func (r *postgresProfileRepository) AddExperience(ctx context.Context, exp *model.Experience) error {
	query := `
		INSERT INTO experiences (profile_id, title, company, location, from_date, to_date, current, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	row := r.db.QueryRowxContext(ctx, query,
		exp.ProfileID, exp.Title, exp.Company, exp.Location, exp.From, exp.To, exp.Current, exp.Description,
	)
	return row.Scan(&exp.ID, &exp.CreatedAt)
}

// RemoveExperience deletes the entry matching the given id; an unknown id is
// a no-op.
func (r *postgresProfileRepository) RemoveExperience(ctx context.Context, profileID, expID uuid.UUID) error {
	query := `DELETE FROM experiences WHERE id = $1 AND profile_id = $2`
	_, err := r.db.ExecContext(ctx, query, expID, profileID)
	return err
}

func (r *postgresProfileRepository) AddEducation(ctx context.Context, edu *model.Education) error {
	query := `
		INSERT INTO educations (profile_id, school, degree, field_of_study, from_date, to_date, current, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	row := r.db.QueryRowxContext(ctx, query,
		edu.ProfileID, edu.School, edu.Degree, edu.FieldOfStudy, edu.From, edu.To, edu.Current, edu.Description,
	)
	return row.Scan(&edu.ID, &edu.CreatedAt)
}

func (r *postgresProfileRepository) RemoveEducation(ctx context.Context, profileID, eduID uuid.UUID) error {
	query := `DELETE FROM educations WHERE id = $1 AND profile_id = $2`
	_, err := r.db.ExecContext(ctx, query, eduID, profileID)
	return err
}
