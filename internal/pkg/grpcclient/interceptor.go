package grpcclient

import (
	"context"
	"strconv"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"marketplace/internal/pkg/middlewares/identity"
	"marketplace/pkg/logger"
)

// UserIDMetadataKey - заголовок, в котором сервис поездок получает id
// пользователя, от имени которого идет вызов.
const UserIDMetadataKey = "x-user-id"

// unaryInterceptor пробрасывает id пользователя из контекста запроса в
// metadata и пишет в лог неуспешные вызовы.
func unaryInterceptor(log logger.Logger) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		if userID, ok := identity.UserID(ctx); ok {
			ctx = metadata.AppendToOutgoingContext(ctx, UserIDMetadataKey, strconv.FormatInt(userID, 10))
		}

		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err != nil {
			log.Warn("gRPC call failed",
				logger.NewField("method", method),
				logger.NewField("code", status.Code(err).String()),
				logger.NewField("duration", time.Since(start)),
				logger.NewField("error", err),
			)
		}
		return err
	}
}
