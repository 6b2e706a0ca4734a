// Package domain defines the core types for osmswap.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SwapSettings: Tolerances, filters and policies for one run
//   - StandardsCatalog: Canonical space-type standards tags
//   - Component: Portable snapshot of a model object and its resources
//   - Workflow: The workflow description sidecar of a model
//   - RunRecord: The outcome of one swap run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
