package projection

import "time"

// Metadata captures lifecycle timestamps shared by read models.
type Metadata struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Projection represents an aggregate view plus lifecycle metadata.
type Projection[T any] struct {
	Entity   T
	Metadata Metadata
}

// Of pairs an entity with its timestamps.
func Of[T any](entity T, createdAt, updatedAt time.Time) Projection[T] {
	return Projection[T]{Entity: entity, Metadata: Metadata{CreatedAt: createdAt, UpdatedAt: updatedAt}}
}
