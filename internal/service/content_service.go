package service

import (
	"context"
	"fmt"

	"github.com/atlasmedia/atlas-backend/internal/api/dto"
	"github.com/atlasmedia/atlas-backend/internal/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ==============================================
// STORE INTERFACE (for testing)
// ==============================================

type ContentStore interface {
	ListBlogPosts(ctx context.Context, limit, offset int) ([]models.BlogPost, error)
	CountBlogPosts(ctx context.Context) (int, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	ListCaseStudies(ctx context.Context, limit, offset int) ([]models.CaseStudy, error)
	CountCaseStudies(ctx context.Context) (int, error)
	GetCaseStudyBySlug(ctx context.Context, slug string) (*models.CaseStudy, error)
	ListEvents(ctx context.Context, limit, offset int) ([]models.Event, error)
	CountEvents(ctx context.Context) (int, error)
	GetEventBySlug(ctx context.Context, slug string) (*models.Event, error)
}

// ==============================================
// CONTENT SERVICE
// ==============================================

type ContentService struct {
	store ContentStore
}

func NewContentService(store ContentStore) *ContentService {
	return &ContentService{store: store}
}

// NormalizePagination clamps page/limit to sane bounds and returns the
// derived offset
func NormalizePagination(page, limit int) (int, int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := (page - 1) * limit
	return page, limit, offset
}

func totalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// ==============================================
// BLOG POSTS
// ==============================================

func (s *ContentService) ListBlogPosts(ctx context.Context, page, limit int) (*dto.ContentListResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	page, limit, offset := NormalizePagination(page, limit)

	posts, err := s.store.ListBlogPosts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	total, err := s.store.CountBlogPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count blog posts: %w", err)
	}

	items := make([]dto.BlogPostDTO, 0, len(posts))
	for i := range posts {
		items = append(items, blogPostToDTO(&posts[i], false))
	}

	return &dto.ContentListResponse{
		Items: items,
		Pagination: dto.PaginationMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	}, nil
}

func (s *ContentService) GetBlogPost(ctx context.Context, slug string) (*dto.BlogPostDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	post, err := s.store.GetBlogPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	item := blogPostToDTO(post, true)
	return &item, nil
}

// ==============================================
// CASE STUDIES
// ==============================================

func (s *ContentService) ListCaseStudies(ctx context.Context, page, limit int) (*dto.ContentListResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	page, limit, offset := NormalizePagination(page, limit)

	studies, err := s.store.ListCaseStudies(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list case studies: %w", err)
	}

	total, err := s.store.CountCaseStudies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count case studies: %w", err)
	}

	items := make([]dto.CaseStudyDTO, 0, len(studies))
	for i := range studies {
		items = append(items, caseStudyToDTO(&studies[i], false))
	}

	return &dto.ContentListResponse{
		Items: items,
		Pagination: dto.PaginationMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	}, nil
}

func (s *ContentService) GetCaseStudy(ctx context.Context, slug string) (*dto.CaseStudyDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	study, err := s.store.GetCaseStudyBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	item := caseStudyToDTO(study, true)
	return &item, nil
}

// ==============================================
// EVENTS
// ==============================================

func (s *ContentService) ListEvents(ctx context.Context, page, limit int) (*dto.ContentListResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	page, limit, offset := NormalizePagination(page, limit)

	events, err := s.store.ListEvents(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	total, err := s.store.CountEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	items := make([]dto.EventDTO, 0, len(events))
	for i := range events {
		items = append(items, eventToDTO(&events[i]))
	}

	return &dto.ContentListResponse{
		Items: items,
		Pagination: dto.PaginationMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	}, nil
}

func (s *ContentService) GetEvent(ctx context.Context, slug string) (*dto.EventDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	event, err := s.store.GetEventBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	item := eventToDTO(event)
	return &item, nil
}

// ==============================================
// DTO MAPPING
// ==============================================

func blogPostToDTO(p *models.BlogPost, includeBody bool) dto.BlogPostDTO {
	item := dto.BlogPostDTO{
		ID:     p.ID,
		Slug:   p.Slug,
		Title:  p.Title,
		Author: p.Author,
	}

	if p.Excerpt.Valid {
		item.Excerpt = p.Excerpt.String
	}
	if p.CoverImage.Valid {
		item.CoverImage = p.CoverImage.String
	}
	if p.PublishedAt.Valid {
		item.PublishedAt = p.PublishedAt.Time.Format("2006-01-02T15:04:05Z07:00")
	}
	if includeBody {
		item.Body = p.Body
	}

	return item
}

func caseStudyToDTO(cs *models.CaseStudy, includeBody bool) dto.CaseStudyDTO {
	item := dto.CaseStudyDTO{
		ID:     cs.ID,
		Slug:   cs.Slug,
		Title:  cs.Title,
		Client: cs.Client,
	}

	if cs.Summary.Valid {
		item.Summary = cs.Summary.String
	}
	if cs.CoverImage.Valid {
		item.CoverImage = cs.CoverImage.String
	}
	if includeBody {
		item.Body = cs.Body
	}

	return item
}

func eventToDTO(e *models.Event) dto.EventDTO {
	item := dto.EventDTO{
		ID:          e.ID,
		Slug:        e.Slug,
		Title:       e.Title,
		Description: e.Description,
		StartsAt:    e.StartsAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	if e.Location.Valid {
		item.Location = e.Location.String
	}
	if e.EndsAt.Valid {
		item.EndsAt = e.EndsAt.Time.Format("2006-01-02T15:04:05Z07:00")
	}

	return item
}
