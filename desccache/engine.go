package desccache

import (
	desc "github.com/rmera/stereodesc"
	"go.uber.org/zap"
)

// Engine wraps another desc.Engine, looking descriptors up in a Cache before
// asking the wrapped engine for them. Parsing always goes to the wrapped
// engine, so invalid SMILES are still caught.
type Engine struct {
	desc.Engine
	cache  *Cache
	hits   int
	misses int
}

// Wrap returns an Engine caching the descriptors computed by e.
func (C *Cache) Wrap(e desc.Engine) *Engine {
	return &Engine{Engine: e, cache: C}
}

// Descriptors returns the cached descriptors for mol, or computes and caches them.
// Cache errors are logged, not returned; the descriptors are then computed as usual.
func (E *Engine) Descriptors(mol desc.Molecule) (desc.Descriptors, error) {
	name := E.Engine.Name()
	smiles := mol.SMILES()
	d, ok, err := E.cache.Get(name, smiles)
	if err != nil {
		E.cache.log.Warn("cache lookup failed", zap.String("smiles", smiles), zap.Error(err))
	}
	if ok {
		E.hits++
		return d, nil
	}
	E.misses++
	d, err = E.Engine.Descriptors(mol)
	if err != nil {
		return nil, desc.ErrDecorate(err, "desccache.Engine.Descriptors")
	}
	if err := E.cache.Put(name, smiles, d); err != nil {
		E.cache.log.Warn("can't store descriptors", zap.String("smiles", smiles), zap.Error(err))
	}
	return d, nil
}

// Stats returns how many lookups were answered from the cache, and how many weren't.
func (E *Engine) Stats() (hits, misses int) {
	return E.hits, E.misses
}
