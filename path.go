package opcuaview

// walkBrowsePathElement advances every local node in current by one
// RelativePathElement: for each candidate, scan its references for edges
// matching the element's reference-type set and direction, and keep the ones
// whose target's BrowseName equals the element's TargetName.
func (e *Engine) walkBrowsePathElement(current []ExpandedNodeID, elem *RelativePathElement, relevantTypes []NodeID) (next []ExpandedNodeID, crossServer []BrowsePathTarget) {
	for _, entry := range current {
		if !entry.IsLocal() {
			continue
		}
		node, ok := e.store.Get(entry.NodeID)
		if !ok {
			continue
		}
		for _, ref := range node.References {
			if ref.IsInverse != elem.IsInverse {
				continue
			}
			if relevantTypes != nil && !containsNodeID(relevantTypes, ref.ReferenceTypeID) {
				continue
			}
			if !ref.TargetID.IsLocal() {
				// Cross-server references can't be name-checked locally;
				// hand these back with the unresolved path
				// index rather than silently dropping them.
				crossServer = append(crossServer, BrowsePathTarget{TargetID: ref.TargetID})
				continue
			}
			target, ok := e.store.Get(ref.TargetID.NodeID)
			if !ok || !target.BrowseName.Equal(elem.TargetName) {
				continue
			}
			next = append(next, ref.TargetID)
		}
	}
	return next, crossServer
}

// translateBrowsePath implements the Path Resolver: walk
// path.Elements one at a time, keeping every matching node at each step (a
// BrowsePath is not required to resolve uniquely).
func (e *Engine) translateBrowsePath(cache *referenceTypeCache, path *BrowsePath) BrowsePathResult {
	if len(path.Elements) == 0 {
		return BrowsePathResult{Status: StatusBadNothingToDo}
	}
	if _, ok := e.store.Get(path.StartingNode); !ok {
		return BrowsePathResult{Status: StatusBadNodeIDUnknown}
	}

	frontier := []ExpandedNodeID{{NodeID: path.StartingNode}}
	var targets []BrowsePathTarget

	for i := range path.Elements {
		elem := &path.Elements[i]
		if elem.TargetName.IsNull() {
			return BrowsePathResult{Status: StatusBadBrowseNameInvalid}
		}

		relevantTypes, err := cache.resolve(elem.ReferenceTypeID, elem.IncludeSubtypes)
		if err != nil {
			return BrowsePathResult{Status: StatusFromErr(err)}
		}

		next, crossServer := e.walkBrowsePathElement(frontier, elem, relevantTypes)
		for _, t := range crossServer {
			t.RemainingPathIndex = uint32(i)
			targets = append(targets, t)
		}

		frontier = next
		if len(frontier) == 0 {
			// Every branch was exhausted or handed off cross-server;
			// nothing is left to expand against later elements.
			break
		}
	}

	// Candidates that survived every element are fully resolved.
	for _, entry := range frontier {
		targets = append(targets, BrowsePathTarget{
			TargetID:           entry,
			RemainingPathIndex: RemainingPathIndexFullyResolved,
		})
	}

	if len(targets) == 0 {
		return BrowsePathResult{Status: StatusBadNoMatch}
	}
	return BrowsePathResult{Status: StatusOK, Targets: targets}
}

// TranslateBrowsePathsToNodeIds implements the TranslateBrowsePathsToNodeIds
// service: one BrowsePathResult per element of
// browsePaths, each resolved independently against a shared reference-type
// cache.
func (e *Engine) TranslateBrowsePathsToNodeIds(browsePaths []BrowsePath) ([]BrowsePathResult, error) {
	if len(browsePaths) == 0 {
		return nil, statusErr(StatusBadNothingToDo)
	}

	cache := newReferenceTypeCache(e.store)
	results := make([]BrowsePathResult, len(browsePaths))
	for i := range browsePaths {
		results[i] = e.translateBrowsePath(cache, &browsePaths[i])
	}
	return results, nil
}

// TranslateBrowsePathOne is the convenience single-path entry point wrapping
// TranslateBrowsePathsToNodeIds.
func (e *Engine) TranslateBrowsePathOne(path BrowsePath) BrowsePathResult {
	cache := newReferenceTypeCache(e.store)
	return e.translateBrowsePath(cache, &path)
}
