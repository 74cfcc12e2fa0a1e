// Package domain contains shared domain types used across entity
// sub-packages. Entity-specific types live in sub-packages (domain/todo).
// This root package holds sentinel errors and validation types shared
// across all entities.
package domain
