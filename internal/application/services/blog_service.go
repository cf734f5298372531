package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/catalog"
	"github.com/dspfilms/studio-go/internal/domain/repositories"
	"github.com/dspfilms/studio-go/internal/infrastructure/security"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a post title.
func Slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// BlogService orchestrates blog posts.
type BlogService struct {
	repo repositories.BlogRepository
}

func NewBlogService(repo repositories.BlogRepository) *BlogService {
	return &BlogService{repo: repo}
}

func (s *BlogService) GetActive() ([]*catalog.BlogPost, error) {
	posts, err := s.repo.FindActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get blog posts: %w", err)
	}
	return posts, nil
}

func (s *BlogService) GetAll() ([]*catalog.BlogPost, error) {
	return s.repo.FindAll()
}

func (s *BlogService) GetByID(id string) (*catalog.BlogPost, error) {
	if id == "" {
		return nil, fmt.Errorf("blog post ID cannot be empty")
	}
	return s.repo.FindByID(id)
}

func (s *BlogService) Create(post *catalog.BlogPost) error {
	if post == nil {
		return fmt.Errorf("blog post cannot be nil")
	}
	if post.Title == "" {
		return fmt.Errorf("blog post title is required")
	}

	post.ID = security.GenerateULID()
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	post.IsActive = true
	post.Created = time.Now().UTC()
	return s.repo.Store(post)
}

func (s *BlogService) Update(post *catalog.BlogPost) error {
	if post == nil || post.ID == "" {
		return fmt.Errorf("blog post ID cannot be empty")
	}
	existing, err := s.repo.FindByID(post.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("blog post %s not found", post.ID)
	}
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	return s.repo.Update(post)
}

func (s *BlogService) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("blog post ID cannot be empty")
	}
	return s.repo.Delete(id)
}
