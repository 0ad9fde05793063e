package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/atlasmedia/atlas-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ==============================================
// CONTENT REPOSITORY
// ==============================================

type ContentRepository struct {
	db *pgxpool.Pool
}

func NewContentRepository(db *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{db: db}
}

// ==============================================
// BLOG POSTS
// ==============================================

func (r *ContentRepository) ListBlogPosts(ctx context.Context, limit, offset int) ([]models.BlogPost, error) {
	query := `
		SELECT id, slug, title, excerpt, body, cover_image, author,
		       is_published, published_at, created_at, updated_at
		FROM blog_posts
		WHERE is_published = TRUE
		ORDER BY published_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		var p models.BlogPost
		if err := rows.Scan(
			&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Body, &p.CoverImage,
			&p.Author, &p.IsPublished, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

func (r *ContentRepository) CountBlogPosts(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM blog_posts WHERE is_published = TRUE`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count blog posts: %w", err)
	}
	return count, nil
}

func (r *ContentRepository) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	query := `
		SELECT id, slug, title, excerpt, body, cover_image, author,
		       is_published, published_at, created_at, updated_at
		FROM blog_posts
		WHERE slug = $1 AND is_published = TRUE
	`

	var p models.BlogPost
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Body, &p.CoverImage,
		&p.Author, &p.IsPublished, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}

	return &p, nil
}

// ==============================================
// CASE STUDIES
// ==============================================

func (r *ContentRepository) ListCaseStudies(ctx context.Context, limit, offset int) ([]models.CaseStudy, error) {
	query := `
		SELECT id, slug, title, client, summary, body, cover_image,
		       is_published, created_at, updated_at
		FROM case_studies
		WHERE is_published = TRUE
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list case studies: %w", err)
	}
	defer rows.Close()

	var studies []models.CaseStudy
	for rows.Next() {
		var cs models.CaseStudy
		if err := rows.Scan(
			&cs.ID, &cs.Slug, &cs.Title, &cs.Client, &cs.Summary, &cs.Body,
			&cs.CoverImage, &cs.IsPublished, &cs.CreatedAt, &cs.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan case study: %w", err)
		}
		studies = append(studies, cs)
	}

	return studies, rows.Err()
}

func (r *ContentRepository) CountCaseStudies(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM case_studies WHERE is_published = TRUE`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count case studies: %w", err)
	}
	return count, nil
}

func (r *ContentRepository) GetCaseStudyBySlug(ctx context.Context, slug string) (*models.CaseStudy, error) {
	query := `
		SELECT id, slug, title, client, summary, body, cover_image,
		       is_published, created_at, updated_at
		FROM case_studies
		WHERE slug = $1 AND is_published = TRUE
	`

	var cs models.CaseStudy
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&cs.ID, &cs.Slug, &cs.Title, &cs.Client, &cs.Summary, &cs.Body,
		&cs.CoverImage, &cs.IsPublished, &cs.CreatedAt, &cs.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to get case study: %w", err)
	}

	return &cs, nil
}

// ==============================================
// EVENTS
// ==============================================

func (r *ContentRepository) ListEvents(ctx context.Context, limit, offset int) ([]models.Event, error) {
	query := `
		SELECT id, slug, title, location, description, starts_at, ends_at,
		       is_published, created_at, updated_at
		FROM events
		WHERE is_published = TRUE
		ORDER BY starts_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(
			&e.ID, &e.Slug, &e.Title, &e.Location, &e.Description,
			&e.StartsAt, &e.EndsAt, &e.IsPublished, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

func (r *ContentRepository) CountEvents(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM events WHERE is_published = TRUE`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

func (r *ContentRepository) GetEventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	query := `
		SELECT id, slug, title, location, description, starts_at, ends_at,
		       is_published, created_at, updated_at
		FROM events
		WHERE slug = $1 AND is_published = TRUE
	`

	var e models.Event
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&e.ID, &e.Slug, &e.Title, &e.Location, &e.Description,
		&e.StartsAt, &e.EndsAt, &e.IsPublished, &e.CreatedAt, &e.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &e, nil
}
