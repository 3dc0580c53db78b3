// Package grpc is the transport collaborator: it maps wire DTOs to service
// calls and sentinel errors to status codes. No business rule lives here.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/miniblog/internal/logging"
	pb "github.com/dmitrijs2005/miniblog/internal/proto"
	"github.com/dmitrijs2005/miniblog/internal/server/images"
	"github.com/dmitrijs2005/miniblog/internal/server/posts"
	"github.com/dmitrijs2005/miniblog/internal/server/users"
	"google.golang.org/grpc"
)

//go:generate protoc -I ../../../proto --go_out=paths=source_relative:../../proto --go-grpc_out=paths=source_relative:../../proto ../../../proto/miniblog.proto

// userSvc is the slice of the user service the transport needs.
type userSvc interface {
	Register(ctx context.Context, username, email, plainPassword, phoneNumber string) (*users.User, error)
	Authenticate(ctx context.Context, email, plainPassword string) (*users.User, error)
	IssueToken(user *users.User) (string, error)
	Get(ctx context.Context, id int64) (*users.User, error)
	ChangePassword(ctx context.Context, id int64, newPassword string) (*users.User, error)
}

type postSvc interface {
	Create(ctx context.Context, title, content string, authorID int64) (*posts.Post, error)
	Get(ctx context.Context, id, requesterID int64) (*posts.Post, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]*posts.Post, error)
	Update(ctx context.Context, id, requesterID int64, title, content string, published bool) (*posts.Post, error)
	Delete(ctx context.Context, id, requesterID int64) error
	AdminListAll(ctx context.Context, requesterIsAdmin bool) ([]*posts.Post, error)
	AdminDelete(ctx context.Context, requesterIsAdmin bool, id int64) error
	AdminDeleteAll(ctx context.Context, requesterIsAdmin bool) (int64, error)
}

type imageSvc interface {
	RequestUpload(ctx context.Context, userID int64, filename, contentType string, fileSize int64) (*images.UploadGrant, error)
	Confirm(ctx context.Context, userID int64, filename, storageKey, contentType string, fileSize int64) (*images.Image, error)
	GetURL(ctx context.Context, userID, imageID int64) (string, error)
	List(ctx context.Context, userID int64) ([]*images.Image, error)
	Delete(ctx context.Context, userID, imageID int64) error
}

type GRPCServer struct {
	pb.UnimplementedMiniBlogServiceServer
	address   string
	users     userSvc
	posts     postSvc
	images    imageSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, ps postSvc, is imageSvc, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		posts:     ps,
		images:    is,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterMiniBlogServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
