package setops

import (
	"time"

	"github.com/tuannh982/grocery-sets/setops/commons"

	log "github.com/sirupsen/logrus"
)

// Engine computes set operations over snapshots of collections. It keeps no state
// between calls and may be shared between goroutines.
type Engine struct {
	now func() time.Time
	log *log.Entry
}

type Option func(*Engine)

func WithLogger(logger *log.Entry) Option {
	return func(e *Engine) {
		e.log = logger
	}
}

// WithClock sets the clock used to stamp synthetic cartesian entries.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now: time.Now,
		log: log.WithFields(log.Fields{"component": "setops"}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewEngine()

// ComputeSetOperation applies op to selected using the default engine. universe is
// only consulted by Complement.
func ComputeSetOperation(op commons.OperationKind, selected []commons.Collection, universe ...commons.Collection) commons.Result {
	return defaultEngine.Compute(op, selected, universe)
}

// Compute applies op to selected. An unmet precondition yields an empty result.
func (e *Engine) Compute(op commons.OperationKind, selected []commons.Collection, universe []commons.Collection) commons.Result {
	if err := CheckPreconditions(op, len(selected)); err != nil {
		e.log.WithFields(log.Fields{
			"operation": op.String(),
			"selected":  commons.Names(selected),
		}).Debug(err)
		return commons.EmptyResult(op)
	}
	var entries []commons.Entry
	switch op {
	case commons.Union:
		entries = union(selected)
	case commons.Intersection:
		entries = intersection(selected)
	case commons.Difference:
		entries = difference(selected)
	case commons.SymmetricDifference:
		entries = symmetricDifference(selected[0], selected[1])
	case commons.Complement:
		entries = e.complement(selected[0], universe)
	case commons.CartesianProduct:
		entries = cartesianProduct(selected[0], selected[1], e.now())
	}
	if entries == nil {
		entries = make([]commons.Entry, 0)
	}
	return commons.Result{
		Operation: op,
		Entries:   entries,
	}
}

// ComputeAll runs every operation on the same selection. Operations whose
// preconditions fail map to empty results.
func (e *Engine) ComputeAll(selected []commons.Collection, universe []commons.Collection) map[commons.OperationKind]commons.Result {
	results := make(map[commons.OperationKind]commons.Result, len(commons.Operations))
	for _, op := range commons.Operations {
		results[op] = e.Compute(op, selected, universe)
	}
	return results
}
