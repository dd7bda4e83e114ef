//go:build tools

package tools

// Pins the generators so `go generate ./...` uses the versions recorded in go.mod.
import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/vektra/mockery/v2"
)
