// Package transfer defines the wire-transfer representations (DTOs) for each
// resource and the pure, side-effect-free mappers that translate between
// persisted entities and those representations. Mapping never performs I/O
// and never fails for well-typed input; malformed request shapes are rejected
// by handler-level validation before they reach this layer.
package transfer
