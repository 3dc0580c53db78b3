package posts

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/miniblog/internal/common"
	"github.com/dmitrijs2005/miniblog/internal/server/config"
)

// Service contains the post use cases. Regular operations are scoped to the
// requesting author; Admin* operations require the admin flag carried in the
// caller's token. The service is stateless and safe for concurrent use.
type Service struct {
	repo           Repository
	minTitleLength int
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:           repo,
		minTitleLength: cfg.MinTitleLength,
	}
}

func (s *Service) validateTitle(title string) error {
	if utf8.RuneCountInString(title) < s.minTitleLength {
		return fmt.Errorf("%w: title must be at least %d characters", common.ErrValidation, s.minTitleLength)
	}
	return nil
}

// Create validates the title rule and delegates to the repository. A
// validation failure performs no repository write.
func (s *Service) Create(ctx context.Context, title, content string, authorID int64) (*Post, error) {

	if err := s.validateTitle(title); err != nil {
		return nil, err
	}

	post := &Post{
		Title:     title,
		Content:   content,
		AuthorID:  authorID,
		Published: true,
	}

	post, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	return post, nil
}

// Get returns a post owned by the requester. Posts of other authors are
// reported as common.ErrNotFound, same as missing ones.
func (s *Service) Get(ctx context.Context, id, requesterID int64) (*Post, error) {
	post, err := s.getOwned(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// ListByAuthor returns the requester's posts, newest first.
func (s *Service) ListByAuthor(ctx context.Context, authorID int64) ([]*Post, error) {
	result, err := s.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return result, nil
}

// Update produces a new snapshot with the given fields and persists it. The
// requester must own the post; the title rule applies as on Create.
func (s *Service) Update(ctx context.Context, id, requesterID int64, title, content string, published bool) (*Post, error) {

	if err := s.validateTitle(title); err != nil {
		return nil, err
	}

	post, err := s.getOwned(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	updated := *post
	updated.Title = title
	updated.Content = content
	updated.Published = published

	result, err := s.repo.Update(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("error updating post: %w", err)
	}

	return result, nil
}

// Delete removes a post owned by the requester.
func (s *Service) Delete(ctx context.Context, id, requesterID int64) error {

	if _, err := s.getOwned(ctx, id, requesterID); err != nil {
		return err
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}

	return nil
}

// AdminListAll returns every post regardless of author.
func (s *Service) AdminListAll(ctx context.Context, requesterIsAdmin bool) ([]*Post, error) {
	if !requesterIsAdmin {
		return nil, common.ErrPermissionDenied
	}

	result, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return result, nil
}

// AdminDelete removes any post by id.
func (s *Service) AdminDelete(ctx context.Context, requesterIsAdmin bool, id int64) error {
	if !requesterIsAdmin {
		return common.ErrPermissionDenied
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	if !deleted {
		return common.ErrNotFound
	}

	return nil
}

// AdminDeleteAll removes every post and returns the number deleted.
func (s *Service) AdminDeleteAll(ctx context.Context, requesterIsAdmin bool) (int64, error) {
	if !requesterIsAdmin {
		return 0, common.ErrPermissionDenied
	}

	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("error deleting posts: %w", err)
	}

	return n, nil
}

func (s *Service) getOwned(ctx context.Context, id, requesterID int64) (*Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error searching post: %w", err)
	}

	// ownership failures look exactly like missing posts
	if post.AuthorID != requesterID {
		return nil, common.ErrNotFound
	}

	return post, nil
}
