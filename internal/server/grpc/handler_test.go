package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/miniblog/internal/common"
	"github.com/dmitrijs2005/miniblog/internal/logging"
	pb "github.com/dmitrijs2005/miniblog/internal/proto"
	"github.com/dmitrijs2005/miniblog/internal/server/images"
	"github.com/dmitrijs2005/miniblog/internal/server/posts"
	"github.com/dmitrijs2005/miniblog/internal/server/users"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---- test logger ----

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeUserSvc struct {
	registerOut *users.User
	registerErr error

	authOut *users.User
	authErr error

	token    string
	tokenErr error

	getOut *users.User
	getErr error

	changeOut *users.User
	changeErr error
}

func (f *fakeUserSvc) Register(ctx context.Context, username, email, plainPassword, phoneNumber string) (*users.User, error) {
	return f.registerOut, f.registerErr
}
func (f *fakeUserSvc) Authenticate(ctx context.Context, email, plainPassword string) (*users.User, error) {
	return f.authOut, f.authErr
}
func (f *fakeUserSvc) IssueToken(user *users.User) (string, error) {
	return f.token, f.tokenErr
}
func (f *fakeUserSvc) Get(ctx context.Context, id int64) (*users.User, error) {
	return f.getOut, f.getErr
}
func (f *fakeUserSvc) ChangePassword(ctx context.Context, id int64, newPassword string) (*users.User, error) {
	return f.changeOut, f.changeErr
}

type fakePostSvc struct {
	createOut *posts.Post
	createErr error

	getOut *posts.Post
	getErr error

	listOut []*posts.Post
	listErr error

	updateOut *posts.Post
	updateErr error

	deleteErr error

	adminListOut []*posts.Post
	adminListErr error

	adminDeleteErr error

	adminDeleteAllN   int64
	adminDeleteAllErr error
}

func (f *fakePostSvc) Create(ctx context.Context, title, content string, authorID int64) (*posts.Post, error) {
	return f.createOut, f.createErr
}
func (f *fakePostSvc) Get(ctx context.Context, id, requesterID int64) (*posts.Post, error) {
	return f.getOut, f.getErr
}
func (f *fakePostSvc) ListByAuthor(ctx context.Context, authorID int64) ([]*posts.Post, error) {
	return f.listOut, f.listErr
}
func (f *fakePostSvc) Update(ctx context.Context, id, requesterID int64, title, content string, published bool) (*posts.Post, error) {
	return f.updateOut, f.updateErr
}
func (f *fakePostSvc) Delete(ctx context.Context, id, requesterID int64) error {
	return f.deleteErr
}
func (f *fakePostSvc) AdminListAll(ctx context.Context, requesterIsAdmin bool) ([]*posts.Post, error) {
	return f.adminListOut, f.adminListErr
}
func (f *fakePostSvc) AdminDelete(ctx context.Context, requesterIsAdmin bool, id int64) error {
	return f.adminDeleteErr
}
func (f *fakePostSvc) AdminDeleteAll(ctx context.Context, requesterIsAdmin bool) (int64, error) {
	return f.adminDeleteAllN, f.adminDeleteAllErr
}

type fakeImageSvc struct {
	grantOut *images.UploadGrant
	grantErr error

	confirmOut *images.Image
	confirmErr error

	url    string
	urlErr error

	listOut []*images.Image
	listErr error

	deleteErr error
}

func (f *fakeImageSvc) RequestUpload(ctx context.Context, userID int64, filename, contentType string, fileSize int64) (*images.UploadGrant, error) {
	return f.grantOut, f.grantErr
}
func (f *fakeImageSvc) Confirm(ctx context.Context, userID int64, filename, storageKey, contentType string, fileSize int64) (*images.Image, error) {
	return f.confirmOut, f.confirmErr
}
func (f *fakeImageSvc) GetURL(ctx context.Context, userID, imageID int64) (string, error) {
	return f.url, f.urlErr
}
func (f *fakeImageSvc) List(ctx context.Context, userID int64) ([]*images.Image, error) {
	return f.listOut, f.listErr
}
func (f *fakeImageSvc) Delete(ctx context.Context, userID, imageID int64) error {
	return f.deleteErr
}

// ---- helpers ----

func newServer(u userSvc, p postSvc, i imageSvc) *GRPCServer {
	return &GRPCServer{
		address:   "127.0.0.1:0",
		users:     u,
		posts:     p,
		images:    i,
		logger:    nopLogger{},
		jwtSecret: []byte("k"),
	}
}

func authedCtx(userID int64, isAdmin bool) context.Context {
	ctx := context.WithValue(context.Background(), userIDKey, userID)
	return context.WithValue(ctx, isAdminKey, isAdmin)
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if st.Code() != code {
		t.Fatalf("expected code %v, got %v (%v)", code, st.Code(), err)
	}
}

// ---- tests ----

func TestPing_OK(t *testing.T) {
	s := newServer(&fakeUserSvc{}, &fakePostSvc{}, &fakeImageSvc{})
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.GetStatus() != "OK" {
		t.Fatalf("unexpected status: %q", resp.GetStatus())
	}
}

func TestRegister_OK(t *testing.T) {
	u := &fakeUserSvc{
		registerOut: &users.User{ID: 1, Username: "alice", Email: "a@x.com", IsActive: true, CreatedAt: time.Now()},
	}
	s := newServer(u, &fakePostSvc{}, &fakeImageSvc{})

	resp, err := s.Register(context.Background(), &pb.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "longenough"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if resp.GetUser().GetId() != 1 || resp.GetUser().GetUsername() != "alice" {
		t.Fatalf("unexpected user: %+v", resp.GetUser())
	}
}

func TestRegister_Conflict(t *testing.T) {
	u := &fakeUserSvc{registerErr: common.ErrConflict}
	s := newServer(u, &fakePostSvc{}, &fakeImageSvc{})

	_, err := s.Register(context.Background(), &pb.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "longenough"})
	wantCode(t, err, codes.AlreadyExists)
}

func TestLogin_OK(t *testing.T) {
	u := &fakeUserSvc{
		authOut: &users.User{ID: 1, Email: "a@x.com", IsActive: true},
		token:   "signed-token",
	}
	s := newServer(u, &fakePostSvc{}, &fakeImageSvc{})

	resp, err := s.Login(context.Background(), &pb.LoginRequest{Email: "a@x.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.GetAccessToken() != "signed-token" {
		t.Fatalf("unexpected token: %q", resp.GetAccessToken())
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	u := &fakeUserSvc{authErr: common.ErrInvalidCredentials}
	s := newServer(u, &fakePostSvc{}, &fakeImageSvc{})

	_, err := s.Login(context.Background(), &pb.LoginRequest{Email: "a@x.com", Password: "wrong"})
	wantCode(t, err, codes.Unauthenticated)
}

func TestLogin_InactiveAccount(t *testing.T) {
	u := &fakeUserSvc{authErr: common.ErrAccountInactive}
	s := newServer(u, &fakePostSvc{}, &fakeImageSvc{})

	_, err := s.Login(context.Background(), &pb.LoginRequest{Email: "a@x.com", Password: "secret"})
	wantCode(t, err, codes.PermissionDenied)
}

func TestGetUser_MissingToken(t *testing.T) {
	s := newServer(&fakeUserSvc{}, &fakePostSvc{}, &fakeImageSvc{})

	_, err := s.GetUser(context.Background(), &pb.GetUserRequest{})
	wantCode(t, err, codes.Unauthenticated)
}

func TestCreatePost_OK(t *testing.T) {
	p := &fakePostSvc{
		createOut: &posts.Post{ID: 10, Title: "Hello World", AuthorID: 1, Published: true, CreatedAt: time.Now(), UpdatedAt: time.Now()},
	}
	s := newServer(&fakeUserSvc{}, p, &fakeImageSvc{})

	resp, err := s.CreatePost(authedCtx(1, false), &pb.CreatePostRequest{Title: "Hello World", Content: "body"})
	if err != nil {
		t.Fatalf("CreatePost error: %v", err)
	}
	if resp.GetPost().GetId() != 10 {
		t.Fatalf("unexpected post: %+v", resp.GetPost())
	}
}

func TestCreatePost_TitleTooShort(t *testing.T) {
	p := &fakePostSvc{createErr: common.ErrValidation}
	s := newServer(&fakeUserSvc{}, p, &fakeImageSvc{})

	_, err := s.CreatePost(authedCtx(1, false), &pb.CreatePostRequest{Title: "Hi", Content: "body"})
	wantCode(t, err, codes.InvalidArgument)
}

func TestGetPost_NotFound(t *testing.T) {
	p := &fakePostSvc{getErr: common.ErrNotFound}
	s := newServer(&fakeUserSvc{}, p, &fakeImageSvc{})

	_, err := s.GetPost(authedCtx(1, false), &pb.GetPostRequest{Id: 99})
	wantCode(t, err, codes.NotFound)
}

func TestAdminDeletePost_Denied(t *testing.T) {
	p := &fakePostSvc{adminDeleteErr: common.ErrPermissionDenied}
	s := newServer(&fakeUserSvc{}, p, &fakeImageSvc{})

	_, err := s.AdminDeletePost(authedCtx(1, false), &pb.AdminDeletePostRequest{Id: 5})
	wantCode(t, err, codes.PermissionDenied)
}

func TestAdminDeleteAllPosts_OK(t *testing.T) {
	p := &fakePostSvc{adminDeleteAllN: 3}
	s := newServer(&fakeUserSvc{}, p, &fakeImageSvc{})

	resp, err := s.AdminDeleteAllPosts(authedCtx(1, true), &pb.AdminDeleteAllPostsRequest{})
	if err != nil {
		t.Fatalf("AdminDeleteAllPosts error: %v", err)
	}
	if resp.GetDeleted() != 3 {
		t.Fatalf("unexpected count: %d", resp.GetDeleted())
	}
}

func TestRequestImageUpload_OK(t *testing.T) {
	i := &fakeImageSvc{grantOut: &images.UploadGrant{StorageKey: "users/2026/1/2/k", URL: "http://put"}}
	s := newServer(&fakeUserSvc{}, &fakePostSvc{}, i)

	resp, err := s.RequestImageUpload(authedCtx(1, false), &pb.RequestImageUploadRequest{Filename: "a.png", ContentType: "image/png", FileSize: 10})
	if err != nil {
		t.Fatalf("RequestImageUpload error: %v", err)
	}
	if resp.GetStorageKey() != "users/2026/1/2/k" || resp.GetUploadUrl() != "http://put" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestDeleteImage_OK(t *testing.T) {
	s := newServer(&fakeUserSvc{}, &fakePostSvc{}, &fakeImageSvc{})

	if _, err := s.DeleteImage(authedCtx(1, false), &pb.DeleteImageRequest{Id: 4}); err != nil {
		t.Fatalf("DeleteImage error: %v", err)
	}
}

func TestDeleteImage_NotFound(t *testing.T) {
	i := &fakeImageSvc{deleteErr: common.ErrNotFound}
	s := newServer(&fakeUserSvc{}, &fakePostSvc{}, i)

	_, err := s.DeleteImage(authedCtx(1, false), &pb.DeleteImageRequest{Id: 4})
	wantCode(t, err, codes.NotFound)
}

func TestStatusFromError_UnknownIsInternal(t *testing.T) {
	err := statusFromError(errors.New("pq: connection reset"))
	wantCode(t, err, codes.Internal)
	if st, _ := status.FromError(err); st.Message() != "internal error" {
		t.Fatalf("internal errors must not leak details, got %q", st.Message())
	}
}
