package ecs

// Each2 visits entities holding both A and B, walking the smaller store.
func Each2[A, B any](sa *Store[A], sb *Store[B], fn func(EntityID, *A, *B)) {
	if sa.Len() <= sb.Len() {
		sa.Each(func(id EntityID, a *A) {
			if b, ok := sb.Get(id); ok {
				fn(id, a, b)
			}
		})
		return
	}
	sb.Each(func(id EntityID, b *B) {
		if a, ok := sa.Get(id); ok {
			fn(id, a, b)
		}
	})
}
