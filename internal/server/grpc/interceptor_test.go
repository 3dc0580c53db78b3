package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/miniblog/internal/common"
	"github.com/dmitrijs2005/miniblog/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
)

const testSecret = "test-secret"

func runInterceptor(t *testing.T, ctx context.Context, method string) (context.Context, error) {
	t.Helper()

	s := newServer(&fakeUserSvc{}, &fakePostSvc{}, &fakeImageSvc{})
	s.jwtSecret = []byte(testSecret)

	var handlerCtx context.Context
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCtx = ctx
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method}, handler)
	return handlerCtx, err
}

func TestInterceptor_PublicMethodSkipsAuth(t *testing.T) {
	handlerCtx, err := runInterceptor(t, context.Background(), "/miniblog.service.MiniBlogService/Login")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handlerCtx == nil {
		t.Fatal("handler was not called")
	}
	if _, ok := userIDFromContext(handlerCtx); ok {
		t.Fatal("public method should not carry claims")
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	_, err := runInterceptor(t, context.Background(), "/miniblog.service.MiniBlogService/GetUser")
	wantCode(t, err, codes.Unauthenticated)
}

func TestInterceptor_InvalidToken(t *testing.T) {
	md := metadata.New(map[string]string{common.AccessTokenHeaderName: "not-a-token"})
	ctx := metadata.NewIncomingContext(context.Background(), md)

	_, err := runInterceptor(t, ctx, "/miniblog.service.MiniBlogService/GetUser")
	wantCode(t, err, codes.Unauthenticated)
}

func TestInterceptor_ExpiredToken(t *testing.T) {
	token, err := auth.GenerateToken(7, false, []byte(testSecret), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	md := metadata.New(map[string]string{common.AccessTokenHeaderName: token})
	ctx := metadata.NewIncomingContext(context.Background(), md)

	_, err = runInterceptor(t, ctx, "/miniblog.service.MiniBlogService/GetUser")
	wantCode(t, err, codes.Unauthenticated)
}

func TestInterceptor_ValidToken(t *testing.T) {
	token, err := auth.GenerateToken(7, true, []byte(testSecret), time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	md := metadata.New(map[string]string{common.AccessTokenHeaderName: token})
	ctx := metadata.NewIncomingContext(context.Background(), md)

	handlerCtx, err := runInterceptor(t, ctx, "/miniblog.service.MiniBlogService/GetUser")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, ok := userIDFromContext(handlerCtx)
	if !ok || id != 7 {
		t.Fatalf("expected user id 7, got %d (ok=%v)", id, ok)
	}
	if !isAdminFromContext(handlerCtx) {
		t.Fatal("expected admin claim")
	}
}
