//go:build tools
// +build tools

// Package tools фиксирует версии утилит разработки в go.mod.
package tools

import (
	// кодогенерация: DI, dto из api/openapi.yaml, моки контрактов
	_ "github.com/google/wire/cmd/wire"
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "go.uber.org/mock/mockgen"

	// миграции migrations/*.sql вне сервиса
	_ "github.com/pressly/goose/v3/cmd/goose"

	// линт и формат
	_ "github.com/golangci/golangci-lint/v2/cmd/golangci-lint"
	_ "mvdan.cc/gofumpt"

	// покрытие unit + integration и нагрузочный прогон API
	_ "github.com/rakyll/hey"
	_ "github.com/wadey/gocovmerge"
)
