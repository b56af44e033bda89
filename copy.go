package roster

import "github.com/rotisserie/eris"

// Copy duplicates an entity's present components into dst, which may equal
// src. A new entity is created in dst and, for every kind e carries in src
// that dst also registers, the component value is copied. Kinds absent on e or
// unregistered in dst are skipped; src is never mutated. On failure the
// partially built destination entity is destroyed before returning.
func Copy(e Entity, src, dst *Registry) (Entity, error) {
	if !src.Valid(e) {
		return Entity{}, InvalidEntityError{Entity: e}
	}
	ne, err := dst.Create()
	if err != nil {
		return Entity{}, eris.Wrap(err, "failed to create destination entity")
	}
	for _, s := range src.stores {
		if !s.has(e) {
			continue
		}
		ds, ok := dst.storeFor(s.kind())
		if !ok {
			continue
		}
		if err := s.copyValue(e, ds, ne); err != nil {
			dst.destroyUnchecked(ne)
			return Entity{}, eris.Wrapf(err, "failed to copy component %s", s.kind().Name())
		}
		bit, _ := dst.kindBit(s.kind())
		dst.masks[ne.index].Mark(bit)
	}
	return ne, nil
}
