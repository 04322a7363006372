//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_test
package trip

import (
	"context"

	"google.golang.org/grpc"
)

// client - *grpc.ClientConn. Сервис поездок принимает и отдает
// google.protobuf.Struct, поэтому сгенерированный клиент не нужен.
type client interface {
	Invoke(ctx context.Context, method string, args any, reply any, opts ...grpc.CallOption) error
}
