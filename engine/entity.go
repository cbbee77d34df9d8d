package engine

// Entity is a unique identifier for an entity
// IDs start at 1 and are never reused within a World
type Entity uint64
