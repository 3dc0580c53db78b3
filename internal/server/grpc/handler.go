package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/miniblog/internal/common"
	pb "github.com/dmitrijs2005/miniblog/internal/proto"
	"github.com/dmitrijs2005/miniblog/internal/server/images"
	"github.com/dmitrijs2005/miniblog/internal/server/posts"
	"github.com/dmitrijs2005/miniblog/internal/server/users"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusFromError translates sentinel errors to gRPC status codes. Unmatched
// errors become Internal with a generic message so no storage detail leaks.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid credentials")
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrAccountInactive), errors.Is(err, common.ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, common.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func requireUserID(ctx context.Context) (int64, error) {
	id, ok := userIDFromContext(ctx)
	if !ok {
		return 0, status.Error(codes.Unauthenticated, "missing token")
	}
	return id, nil
}

func userToPb(u *users.User) *pb.User {
	return &pb.User{
		Id:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		IsActive:    u.IsActive,
		IsAdmin:     u.IsAdmin,
		CreatedAt:   u.CreatedAt.Unix(),
	}
}

func postToPb(p *posts.Post) *pb.Post {
	return &pb.Post{
		Id:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		AuthorId:  p.AuthorID,
		Published: p.Published,
		CreatedAt: p.CreatedAt.Unix(),
		UpdatedAt: p.UpdatedAt.Unix(),
	}
}

func imageToPb(i *images.Image) *pb.Image {
	return &pb.Image{
		Id:          i.ID,
		Filename:    i.Filename,
		StorageKey:  i.StorageKey,
		ContentType: i.ContentType,
		FileSize:    i.FileSize,
		UserId:      i.UserID,
		UploadedAt:  i.UploadedAt.Unix(),
	}
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request", "username", req.GetUsername())

	user, err := s.users.Register(ctx, req.GetUsername(), req.GetEmail(), req.GetPassword(), req.GetPhoneNumber())
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Registered", "username", user.Username, "id", user.ID)
	return &pb.RegisterResponse{User: userToPb(user)}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	user, err := s.users.Authenticate(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, statusFromError(err)
	}

	token, err := s.users.IssueToken(user)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.LoginResponse{AccessToken: token}, nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.GetUserResponse, error) {

	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.GetUserResponse{User: userToPb(user)}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.ChangePasswordResponse, error) {

	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.ChangePassword(ctx, userID, req.GetNewPassword())
	if err != nil {
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Password changed", "username", user.Username)
	return &pb.ChangePasswordResponse{}, nil
}

func (s *GRPCServer) CreatePost(ctx context.Context, req *pb.CreatePostRequest) (*pb.CreatePostResponse, error) {

	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	post, err := s.posts.Create(ctx, req.GetTitle(), req.GetContent(), userID)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.CreatePostResponse{Post: postToPb(post)}, nil
}

func (s *GRPCServer) GetPost(ctx context.Context, req *pb.GetPostRequest) (*pb.GetPostResponse, error) {

	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	post, err := s.posts.Get(ctx, req.GetId(), userID)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.GetPostResponse{Post: postToPb(post)}, nil
}

func (s *GRPCServer) ListPosts(ctx context.Context, req *pb.ListPostsRequest) (*pb.ListPostsResponse, error) {

	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.posts.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &pb.ListPostsResponse{}
	for _, p := range list {
		resp.Posts = append(resp.Posts, postToPb(p))
	}
	return resp, nil
}

func (s *GRPCServer) UpdatePost(ctx context.Context, req *pb.UpdatePostRequest) (*pb.UpdatePostResponse, error) {

	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	post, err := s.posts.Update(ctx, req.GetId(), userID, req.GetTitle(), req.GetContent(), req.GetPublished())
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.UpdatePostResponse{Post: postToPb(post)}, nil
}

func (s *GRPCServer) DeletePost(ctx context.Context, req *pb.DeletePostRequest) (*pb.DeletePostResponse, error) {

	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.posts.Delete(ctx, req.GetId(), userID); err != nil {
		return nil, statusFromError(err)
	}

	return &pb.DeletePostResponse{}, nil
}

func (s *GRPCServer) AdminListPosts(ctx context.Context, req *pb.AdminListPostsRequest) (*pb.AdminListPostsResponse, error) {

	if _, err := requireUserID(ctx); err != nil {
		return nil, err
	}

	list, err := s.posts.AdminListAll(ctx, isAdminFromContext(ctx))
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &pb.AdminListPostsResponse{}
	for _, p := range list {
		resp.Posts = append(resp.Posts, postToPb(p))
	}
	return resp, nil
}

func (s *GRPCServer) AdminDeletePost(ctx context.Context, req *pb.AdminDeletePostRequest) (*pb.AdminDeletePostResponse, error) {

	if _, err := requireUserID(ctx); err != nil {
		return nil, err
	}

	if err := s.posts.AdminDelete(ctx, isAdminFromContext(ctx), req.GetId()); err != nil {
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Post deleted by admin", "id", req.GetId())
	return &pb.AdminDeletePostResponse{}, nil
}

func (s *GRPCServer) AdminDeleteAllPosts(ctx context.Context, req *pb.AdminDeleteAllPostsRequest) (*pb.AdminDeleteAllPostsResponse, error) {

	if _, err := requireUserID(ctx); err != nil {
		return nil, err
	}

	n, err := s.posts.AdminDeleteAll(ctx, isAdminFromContext(ctx))
	if err != nil {
		return nil, statusFromError(err)
	}

	s.logger.Warn(ctx, "All posts deleted by admin", "count", n)
	return &pb.AdminDeleteAllPostsResponse{Deleted: n}, nil
}

func (s *GRPCServer) RequestImageUpload(ctx context.Context, req *pb.RequestImageUploadRequest) (*pb.RequestImageUploadResponse, error) {

	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	grant, err := s.images.RequestUpload(ctx, userID, req.GetFilename(), req.GetContentType(), req.GetFileSize())
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.RequestImageUploadResponse{StorageKey: grant.StorageKey, UploadUrl: grant.URL}, nil
}

func (s *GRPCServer) ConfirmImageUpload(ctx context.Context, req *pb.ConfirmImageUploadRequest) (*pb.ConfirmImageUploadResponse, error) {

	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	image, err := s.images.Confirm(ctx, userID, req.GetFilename(), req.GetStorageKey(), req.GetContentType(), req.GetFileSize())
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.ConfirmImageUploadResponse{Image: imageToPb(image)}, nil
}

func (s *GRPCServer) GetImageUrl(ctx context.Context, req *pb.GetImageUrlRequest) (*pb.GetImageUrlResponse, error) {

	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	url, err := s.images.GetURL(ctx, userID, req.GetId())
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.GetImageUrlResponse{Url: url}, nil
}

func (s *GRPCServer) DeleteImage(ctx context.Context, req *pb.DeleteImageRequest) (*pb.DeleteImageResponse, error) {

	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.images.Delete(ctx, userID, req.GetId()); err != nil {
		return nil, statusFromError(err)
	}

	return &pb.DeleteImageResponse{}, nil
}

func (s *GRPCServer) ListImages(ctx context.Context, req *pb.ListImagesRequest) (*pb.ListImagesResponse, error) {

	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.images.List(ctx, userID)
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &pb.ListImagesResponse{}
	for _, i := range list {
		resp.Images = append(resp.Images, imageToPb(i))
	}
	return resp, nil
}
