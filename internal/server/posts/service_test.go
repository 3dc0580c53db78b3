package posts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/miniblog/internal/common"
	"github.com/dmitrijs2005/miniblog/internal/server/config"
)

// ---- fakes ----

type fakeRepo struct {
	createOut *Post
	createErr error

	byIDOut *Post
	byIDErr error

	listOut []*Post
	listErr error

	updateOut *Post
	updateErr error

	deleteOK  bool
	deleteErr error

	deleteAllN   int64
	deleteAllErr error

	createCalls    int
	updateCalls    int
	deleteCalls    int
	deleteAllCalls int
}

func (f *fakeRepo) Create(ctx context.Context, p *Post) (*Post, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	created := *p
	created.ID = 10
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	return &created, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*Post, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeRepo) ListByAuthor(ctx context.Context, authorID int64) ([]*Post, error) {
	return f.listOut, f.listErr
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]*Post, error) {
	return f.listOut, f.listErr
}

func (f *fakeRepo) Update(ctx context.Context, p *Post) (*Post, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut != nil {
		return f.updateOut, nil
	}
	updated := *p
	updated.UpdatedAt = time.Now()
	return &updated, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	f.deleteCalls++
	return f.deleteOK, f.deleteErr
}

func (f *fakeRepo) DeleteAll(ctx context.Context) (int64, error) {
	f.deleteAllCalls++
	return f.deleteAllN, f.deleteAllErr
}

// ---- helpers ----

func newTestService(repo Repository) *Service {
	cfg := &config.Config{MinTitleLength: 5}
	return NewService(repo, cfg)
}

func ownedPost(id, authorID int64) *Post {
	return &Post{
		ID:        id,
		Title:     "Hello World",
		Content:   "body",
		AuthorID:  authorID,
		Published: true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// ---- Create ----

func TestCreate_TitleTooShort(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(repo)

	_, err := s.Create(context.Background(), "Hi", "body", 1)
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("validation failure must perform no repository write, got %d calls", repo.createCalls)
	}
}

func TestCreate_Success(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(repo)

	post, err := s.Create(context.Background(), "Hello World", "body", 1)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if repo.createCalls != 1 {
		t.Fatalf("expected exactly one repository write, got %d", repo.createCalls)
	}
	if post.ID == 0 {
		t.Fatalf("expected assigned id, got %+v", post)
	}
	if !post.Published {
		t.Fatalf("new posts must default to published")
	}
	if post.AuthorID != 1 {
		t.Fatalf("author mismatch: %+v", post)
	}
}

func TestCreate_ExactMinimumLengthTitle(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(repo)

	if _, err := s.Create(context.Background(), "12345", "body", 1); err != nil {
		t.Fatalf("five-character title must pass, got %v", err)
	}
}

func TestCreate_RepoErrorPropagates(t *testing.T) {
	boom := errors.New("db down")
	repo := &fakeRepo{createErr: boom}
	s := newTestService(repo)

	_, err := s.Create(context.Background(), "Hello World", "body", 1)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}

// ---- Get ----

func TestGet_OwnedPost(t *testing.T) {
	repo := &fakeRepo{byIDOut: ownedPost(10, 1)}
	s := newTestService(repo)

	post, err := s.Get(context.Background(), 10, 1)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if post.ID != 10 {
		t.Fatalf("unexpected post: %+v", post)
	}
}

func TestGet_OtherAuthorLooksMissing(t *testing.T) {
	repo := &fakeRepo{byIDOut: ownedPost(10, 2)}
	s := newTestService(repo)

	_, err := s.Get(context.Background(), 10, 1)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign post, got %v", err)
	}
}

func TestGet_Missing(t *testing.T) {
	repo := &fakeRepo{byIDErr: common.ErrNotFound}
	s := newTestService(repo)

	_, err := s.Get(context.Background(), 99, 1)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// ---- Update ----

func TestUpdate_ProducesNewSnapshot(t *testing.T) {
	stored := ownedPost(10, 1)
	repo := &fakeRepo{byIDOut: stored}
	s := newTestService(repo)

	updated, err := s.Update(context.Background(), 10, 1, "Fresh Title", "new body", false)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Title != "Fresh Title" || updated.Published {
		t.Fatalf("unexpected snapshot: %+v", updated)
	}
	if stored.Title != "Hello World" {
		t.Fatalf("stored snapshot must stay intact: %+v", stored)
	}
	if repo.updateCalls != 1 {
		t.Fatalf("expected one update, got %d", repo.updateCalls)
	}
}

func TestUpdate_TitleRuleApplies(t *testing.T) {
	repo := &fakeRepo{byIDOut: ownedPost(10, 1)}
	s := newTestService(repo)

	_, err := s.Update(context.Background(), 10, 1, "Hi", "body", true)
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("validation failure must not write")
	}
}

func TestUpdate_ForeignPost(t *testing.T) {
	repo := &fakeRepo{byIDOut: ownedPost(10, 2)}
	s := newTestService(repo)

	_, err := s.Update(context.Background(), 10, 1, "Fresh Title", "body", true)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// ---- Delete ----

func TestDelete_Owned(t *testing.T) {
	repo := &fakeRepo{byIDOut: ownedPost(10, 1), deleteOK: true}
	s := newTestService(repo)

	if err := s.Delete(context.Background(), 10, 1); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if repo.deleteCalls != 1 {
		t.Fatalf("expected one delete, got %d", repo.deleteCalls)
	}
}

func TestDelete_Foreign(t *testing.T) {
	repo := &fakeRepo{byIDOut: ownedPost(10, 2)}
	s := newTestService(repo)

	err := s.Delete(context.Background(), 10, 1)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if repo.deleteCalls != 0 {
		t.Fatalf("foreign post must not be deleted")
	}
}

// ---- Admin ----

func TestAdminListAll_RequiresAdmin(t *testing.T) {
	repo := &fakeRepo{listOut: []*Post{ownedPost(1, 1), ownedPost(2, 2)}}
	s := newTestService(repo)

	_, err := s.AdminListAll(context.Background(), false)
	if !errors.Is(err, common.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}

	all, err := s.AdminListAll(context.Background(), true)
	if err != nil {
		t.Fatalf("AdminListAll error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(all))
	}
}

func TestAdminDelete_MissingPost(t *testing.T) {
	repo := &fakeRepo{deleteOK: false}
	s := newTestService(repo)

	err := s.AdminDelete(context.Background(), true, 99)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdminDeleteAll(t *testing.T) {
	repo := &fakeRepo{deleteAllN: 7}
	s := newTestService(repo)

	if _, err := s.AdminDeleteAll(context.Background(), false); !errors.Is(err, common.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}

	n, err := s.AdminDeleteAll(context.Background(), true)
	if err != nil {
		t.Fatalf("AdminDeleteAll error: %v", err)
	}
	if n != 7 {
		t.Fatalf("expected 7 deletions, got %d", n)
	}
}
