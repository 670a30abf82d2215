// internal/types/types.go
package types

// EntityID is a non-owning handle into the entity tables. A zero ID never
// refers to a live entity.
type EntityID uint64
