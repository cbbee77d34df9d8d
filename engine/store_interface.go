package engine

// AnyStore provides type-erased operations for lifecycle management
// This lets World destroy entities without knowing concrete component types
type AnyStore interface {
	Remove(e Entity)
	Has(e Entity) bool
	Count() int
	Clear()
}

// QueryableStore extends AnyStore with the iteration needed by QueryBuilder
type QueryableStore interface {
	AnyStore
	All() []Entity
}
