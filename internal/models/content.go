package models

import (
	"database/sql"
	"time"
)

// ==============================================
// PUBLIC CONTENT MODELS
// ==============================================

// BlogPost represents a published blog article
type BlogPost struct {
	ID          int            `db:"id"`
	Slug        string         `db:"slug"`
	Title       string         `db:"title"`
	Excerpt     sql.NullString `db:"excerpt"`
	Body        string         `db:"body"`
	CoverImage  sql.NullString `db:"cover_image"`
	Author      string         `db:"author"`
	IsPublished bool           `db:"is_published"`
	PublishedAt sql.NullTime   `db:"published_at"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// CaseStudy represents a client case study
type CaseStudy struct {
	ID          int            `db:"id"`
	Slug        string         `db:"slug"`
	Title       string         `db:"title"`
	Client      string         `db:"client"`
	Summary     sql.NullString `db:"summary"`
	Body        string         `db:"body"`
	CoverImage  sql.NullString `db:"cover_image"`
	IsPublished bool           `db:"is_published"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// Event represents a marketing event listing
type Event struct {
	ID          int            `db:"id"`
	Slug        string         `db:"slug"`
	Title       string         `db:"title"`
	Location    sql.NullString `db:"location"`
	Description string         `db:"description"`
	StartsAt    time.Time      `db:"starts_at"`
	EndsAt      sql.NullTime   `db:"ends_at"`
	IsPublished bool           `db:"is_published"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}
