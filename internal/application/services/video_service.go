package services

import (
	"fmt"
	"time"

	"github.com/dspfilms/studio-go/internal/domain/entities/catalog"
	"github.com/dspfilms/studio-go/internal/domain/repositories"
	"github.com/dspfilms/studio-go/internal/infrastructure/security"
)

// VideoService orchestrates the showcase video list.
type VideoService struct {
	repo repositories.VideoRepository
}

func NewVideoService(repo repositories.VideoRepository) *VideoService {
	return &VideoService{repo: repo}
}

func (s *VideoService) GetActive() ([]*catalog.Video, error) {
	videos, err := s.repo.FindActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get videos: %w", err)
	}
	return videos, nil
}

func (s *VideoService) GetAll() ([]*catalog.Video, error) {
	return s.repo.FindAll()
}

func (s *VideoService) GetByID(id string) (*catalog.Video, error) {
	if id == "" {
		return nil, fmt.Errorf("video ID cannot be empty")
	}
	return s.repo.FindByID(id)
}

func (s *VideoService) Create(video *catalog.Video) error {
	if video == nil {
		return fmt.Errorf("video cannot be nil")
	}
	if video.Title == "" || video.URL == "" {
		return fmt.Errorf("video title and URL are required")
	}

	video.ID = security.GenerateULID()
	video.IsActive = true
	video.Created = time.Now().UTC()
	return s.repo.Store(video)
}

func (s *VideoService) Update(video *catalog.Video) error {
	if video == nil || video.ID == "" {
		return fmt.Errorf("video ID cannot be empty")
	}
	existing, err := s.repo.FindByID(video.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("video %s not found", video.ID)
	}
	return s.repo.Update(video)
}

func (s *VideoService) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("video ID cannot be empty")
	}
	return s.repo.Delete(id)
}
