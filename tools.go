//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Migrations are applied with the goose CLI pinned via the go.mod tool
// directive: go tool goose -dir migrations postgres "$DATABASE_DSN" up
