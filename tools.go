//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq (function-field mocks in _test.go files)
// - github.com/pressly/goose/v3/cmd/goose (ad-hoc migrations against postgres)
