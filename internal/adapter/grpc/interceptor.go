package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	fairpricev1 "github.com/simaogato/fairprice-backend/internal/adapter/grpc/fairprice/v1"
)

type userIDKey struct{}

// PublicMethods can be called without a token
var PublicMethods = map[string]bool{
	fairpricev1.FairPriceService_ComputeValuation_FullMethodName: true,
	healthpb.Health_Check_FullMethodName:                         true,
}

// WithUserID returns a copy of ctx carrying the authenticated user ID
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the authenticated user ID, or uuid.Nil
func UserIDFromContext(ctx context.Context) uuid.UUID {
	userID, _ := ctx.Value(userIDKey{}).(uuid.UUID)
	return userID
}

// AuthInterceptor returns a gRPC unary server interceptor that resolves the
// authorization token from request metadata to a user ID.
// If the token is missing or unknown, it returns status.Unauthenticated,
// except for public methods which run anonymously.
// If valid, it calls the handler with the user ID in the context.
func AuthInterceptor(tokens map[string]uuid.UUID) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		userID, err := authenticate(ctx, tokens)
		if err != nil {
			if PublicMethods[info.FullMethod] {
				return handler(ctx, req)
			}
			return nil, err
		}

		zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", userID.String())
		})

		return handler(WithUserID(ctx, userID), req)
	}
}

func authenticate(ctx context.Context, tokens map[string]uuid.UUID) (uuid.UUID, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return uuid.Nil, status.Error(codes.Unauthenticated, "missing metadata")
	}

	authHeaders := md.Get("authorization")
	if len(authHeaders) == 0 {
		return uuid.Nil, status.Error(codes.Unauthenticated, "missing authorization header")
	}

	userID, ok := tokens[authHeaders[0]]
	if !ok {
		return uuid.Nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return userID, nil
}

// LoggingInterceptor returns a gRPC unary server interceptor that logs every
// call with its method, user, duration and status code. It must run before
// AuthInterceptor so the user can be attached to the request logger.
func LoggingInterceptor(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()

		l := logger.With().Str("method", info.FullMethod).Logger()
		ctx = l.WithContext(ctx)

		resp, err := handler(ctx, req)

		code := status.Code(err)
		event := zerolog.Ctx(ctx).WithLevel(levelFor(code)).
			Str("code", code.String()).
			Dur("duration", time.Since(start))
		if err != nil {
			event = event.Err(err)
		}
		event.Msg("handled request")

		return resp, err
	}
}

// RecoveryInterceptor turns a panicking handler into an Internal error.
// It runs after LoggingInterceptor so the panic is logged with the request.
func RecoveryInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				zerolog.Ctx(ctx).Error().Interface("panic", r).Msg("handler panicked")
				resp, err = nil, status.Error(codes.Internal, "internal error")
			}
		}()

		return handler(ctx, req)
	}
}

func levelFor(code codes.Code) zerolog.Level {
	switch code {
	case codes.OK:
		return zerolog.InfoLevel
	case codes.InvalidArgument, codes.NotFound, codes.AlreadyExists, codes.Unauthenticated, codes.Canceled:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
