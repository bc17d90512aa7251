// Package registry enforces the uniqueness invariant that identity-based
// equality needs when introspection is disabled: at most one comparable
// adapter per distinct procedure (or object/method pair).
//
// The core procedure package deliberately leaves that invariant as a caller
// contract, exactly as cheap as not having it. A Registry is the opt-in
// alternative: acquire every comparable adapter through it and the invariant
// holds by construction, at the cost of a lookup and a lock per acquisition.
//
// The guarantee only covers adapters acquired through the same Registry;
// adapters built directly with the procedure package bypass it.
package registry

import (
	"reflect"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/procedure_ive_go/procedure"
	"github.com/on-the-ground/procedure_ive_go/procedure/internal/identity"
	"github.com/on-the-ground/procedure_ive_go/shared/helper"
)

// Registry deduplicates comparable adapters by procedure identity.
// Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	buckets map[uint64][]entry
	logger  *zap.Logger
}

type entry struct {
	key     identity.Key
	token   string
	adapter any
}

// New returns an empty Registry. A nil logger disables registration logging.
func New(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		buckets: make(map[uint64][]entry),
		logger:  logger,
	}
}

// Len reports the number of registered procedure identities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, bucket := range r.buckets {
		n += len(bucket)
	}
	return n
}

func (r *Registry) lookup(key identity.Key) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.buckets[key.Sum64()] {
		if e.key == key {
			return e.adapter, true
		}
	}
	return nil, false
}

func (r *Registry) store(key identity.Key, adapter any) {
	token := uuid.New().String()
	r.buckets[key.Sum64()] = append(r.buckets[key.Sum64()], entry{
		key:     key,
		token:   token,
		adapter: adapter,
	})
	r.logger.Debug("registered procedure adapter",
		zap.String("token", token),
		zap.Uint64("identity", key.Sum64()),
	)
}

// Generic acquisition as top-level functions: methods cannot carry type
// parameters.

func acquire[P, R any](
	r *Registry,
	key identity.Key,
	construct func() (procedure.ComparablyProcedural[P, R], error),
) (procedure.ComparablyProcedural[P, R], error) {
	if cached, ok := r.lookup(key); ok {
		return asAdapter[P, R](cached), nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.buckets[key.Sum64()] {
		if e.key == key {
			return asAdapter[P, R](e.adapter), nil
		}
	}
	adapter, err := construct()
	if err != nil {
		return nil, err
	}
	r.store(key, adapter)
	return adapter, nil
}

func asAdapter[P, R any](cached any) procedure.ComparablyProcedural[P, R] {
	return helper.MustGetTypedValue[procedure.ComparablyProcedural[P, R]](
		func() (any, error) { return cached, nil },
	)
}

// Procure returns the canonical comparable adapter for a function or closure,
// constructing it on first acquisition.
func Procure[P, R any](r *Registry, fn func(P) R) procedure.ComparablyProcedural[P, R] {
	adapter, _ := acquire(r, identity.OfFunc(fn),
		func() (procedure.ComparablyProcedural[P, R], error) {
			return procedure.ProcureComparably(fn), nil
		},
	)
	return adapter
}

// Procure0 is Procure for niladic functions.
func Procure0[R any](r *Registry, fn func() R) procedure.ComparablyProcedural[procedure.Unit, R] {
	adapter, _ := acquire(r, identity.OfFunc(fn),
		func() (procedure.ComparablyProcedural[procedure.Unit, R], error) {
			return procedure.Procure0Comparably(fn), nil
		},
	)
	return adapter
}

// ProcureVia returns the canonical comparable adapter for a call-operator
// object. Pass the object as a pointer; its identity is its address.
func ProcureVia[P, R any](
	r *Registry,
	object procedure.Callable[P, R],
	g procedure.Guide[P, R],
) procedure.ComparablyProcedural[P, R] {
	adapter, _ := acquire(r, identity.OfObject(object, object.Call),
		func() (procedure.ComparablyProcedural[P, R], error) {
			return procedure.ProcureViaComparably(object, g), nil
		},
	)
	return adapter
}

// ProcureMethod returns the canonical comparable adapter for an object/method
// pair. Fails like procedure.ProcureMethodComparably.
func ProcureMethod[T any, P, R any](
	r *Registry,
	object *T,
	method func(*T, P) R,
	g procedure.Guide[P, R],
) (procedure.ComparablyProcedural[P, R], error) {
	return acquire(r, identity.OfMethod(object, identity.OfFunc(method).Method),
		func() (procedure.ComparablyProcedural[P, R], error) {
			return procedure.ProcureMethodComparably(object, method, g)
		},
	)
}

// ProcureNamed returns the canonical comparable adapter for an object/method
// pair identified by name. Fails like procedure.ProcureNamedComparably.
func ProcureNamed[P, R any](
	r *Registry,
	object any,
	name string,
	g procedure.Guide[P, R],
) (procedure.ComparablyProcedural[P, R], error) {
	construct := func() (procedure.ComparablyProcedural[P, R], error) {
		return procedure.ProcureNamedComparably(object, name, g)
	}
	if object == nil {
		// Let the constructor produce the descriptor error.
		return construct()
	}
	mt, ok := reflect.TypeOf(object).MethodByName(name)
	if !ok {
		return construct()
	}
	return acquire(r, identity.OfMethod(object, mt.Func.Pointer()), construct)
}
