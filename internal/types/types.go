// internal/types/types.go
package types

// EntityID identifies a live entity (balloon, tower or projectile).
// ID 0 is never allocated and means "no entity".
type EntityID uint64
