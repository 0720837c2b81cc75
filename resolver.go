package opcuaview

// resolveReferenceTypeHierarchy implements the Reference-Type Hierarchy
// Resolver: given a reference-type id and whether subtypes
// should be included, returns the set of reference-type ids a filter
// should treat as a match.
//
// The caller (browse and path-resolution code) is expected to skip this
// entirely when rootID.IsNull() — "all references match" — since the null
// id never resolves to a node.
func resolveReferenceTypeHierarchy(store NodeStore, rootID NodeID, includeSubtypes bool) ([]NodeID, error) {
	root, ok := store.Get(rootID)
	if !ok || root.NodeClass != NodeClassReferenceType {
		return nil, statusErr(StatusBadReferenceTypeIDInvalid)
	}

	if !includeSubtypes {
		return []NodeID{rootID}, nil
	}

	return subtypeClosure(store, rootID), nil
}

// subtypeClosure walks HasSubtype references breadth-first from rootID,
// returning rootID plus every transitive subtype. Duplicates are
// suppressed; the returned order is not meaningful.
func subtypeClosure(store NodeStore, rootID NodeID) []NodeID {
	seen := map[NodeID]bool{rootID: true}
	closure := []NodeID{rootID}
	queue := []NodeID{rootID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		node, ok := store.Get(current)
		if !ok {
			continue
		}
		for _, ref := range node.References {
			if ref.IsInverse || ref.ReferenceTypeID != NodeIDHasSubtype || !ref.TargetID.IsLocal() {
				continue
			}
			child := ref.TargetID.NodeID
			if seen[child] {
				continue
			}
			seen[child] = true
			closure = append(closure, child)
			queue = append(queue, child)
		}
	}
	return closure
}

// referenceTypeCache memoizes subtype closures for the lifetime of a single
// Browse/Translate call: sibling browse elements or path elements that
// share a root reference type don't re-walk the hierarchy.
type referenceTypeCache struct {
	store NodeStore
	cache map[cacheKey][]NodeID
}

type cacheKey struct {
	root            NodeID
	includeSubtypes bool
}

func newReferenceTypeCache(store NodeStore) *referenceTypeCache {
	return &referenceTypeCache{store: store, cache: make(map[cacheKey][]NodeID)}
}

// resolve returns (nil, nil) when rootID is null, meaning "all reference
// types match" — callers must treat a nil slice with a nil error as
// "no filter", distinct from a failed resolution which returns an error.
func (c *referenceTypeCache) resolve(rootID NodeID, includeSubtypes bool) ([]NodeID, error) {
	if rootID.IsNull() {
		return nil, nil
	}
	key := cacheKey{root: rootID, includeSubtypes: includeSubtypes}
	if types, ok := c.cache[key]; ok {
		return types, nil
	}
	types, err := resolveReferenceTypeHierarchy(c.store, rootID, includeSubtypes)
	if err != nil {
		return nil, err
	}
	c.cache[key] = types
	return types, nil
}
