// Package domain contains the core domain model for svgstore.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// markup parsing, or the filesystem. Infra/adapters map into/from these types.
package domain
