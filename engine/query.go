package engine

import "sort"

// QueryBuilder finds entities by component intersection
// Starts from the smallest With store and filters through the rest
type QueryBuilder struct {
	world    *World
	with     []QueryableStore
	without  []AnyStore
	executed bool
	results  []Entity
}

// Query creates a new QueryBuilder
//
// Example:
//
//	obstacles := world.Query().
//	    With(world.Components.Positions).
//	    With(world.Components.Shapes).
//	    Without(world.Components.Balls).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world: w,
		with:  make([]QueryableStore, 0, 4),
	}
}

// With requires entities to have a component in store
// Panics if called after Execute()
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.with = append(qb.with, store)
	return qb
}

// Without excludes entities that have a component in store
// Panics if called after Execute()
func (qb *QueryBuilder) Without(store AnyStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.without = append(qb.without, store)
	return qb
}

// Execute runs the query; repeated calls return the cached result
// A query with no With stores returns an empty slice
func (qb *QueryBuilder) Execute() []Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.with) == 0 {
		qb.results = make([]Entity, 0)
		return qb.results
	}

	// Stable so equal-sized stores keep declaration order for deterministic results
	sort.SliceStable(qb.with, func(i, j int) bool {
		return qb.with[i].Count() < qb.with[j].Count()
	})

	candidates := qb.with[0].All()
	filtered := candidates[:0]
	for _, e := range candidates {
		if qb.matches(e) {
			filtered = append(filtered, e)
		}
	}

	qb.results = filtered
	return qb.results
}

func (qb *QueryBuilder) matches(e Entity) bool {
	for _, store := range qb.with[1:] {
		if !store.Has(e) {
			return false
		}
	}
	for _, store := range qb.without {
		if store.Has(e) {
			return false
		}
	}
	return true
}
