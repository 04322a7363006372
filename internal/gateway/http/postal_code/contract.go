//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=postal_code_test
package postal_code

import "context"

type client interface {
	GetJSON(ctx context.Context, method, url string, out any) error
}
