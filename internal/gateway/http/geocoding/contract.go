//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=geocoding_test
package geocoding

import "context"

type client interface {
	GetJSON(ctx context.Context, method, url string, out any) error
}
