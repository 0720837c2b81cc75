package opcuaview

// browseRelevantReferences is the inner loop of browseSingle: walk the
// node's references in stored order, skip what the continuation point has
// already delivered, fill descriptors for the rest up to maxrefs, and
// report whether the whole list was consumed.
func (e *Engine) browseRelevantReferences(node *Node, descr *BrowseDescription, relevantTypes []NodeID, cp *continuationPointEntry) (refs []ReferenceDescription, done bool) {
	if len(node.References) == 0 {
		return nil, true
	}

	maxrefs := cp.maxReferences
	if maxrefs == 0 || maxrefs > uint32(len(node.References)) {
		maxrefs = uint32(len(node.References))
	}

	result := make([]ReferenceDescription, 0, maxrefs)
	var skipped uint32
	i := 0
	for ; i < len(node.References) && uint32(len(result)) < maxrefs; i++ {
		target := acceptReference(e.store, descr, node.References[i], relevantTypes)
		if target == nil {
			continue
		}
		if skipped < cp.continuationIndex {
			skipped++
			continue
		}
		result = append(result, fillReferenceDescription(target, node.References[i], descr.ResultMask))
	}

	return result, i == len(node.References)
}

// browseSingle is the unified entry point for first-time Browse and
// BrowseNext continuation. cp == nil means a fresh call using descr/maxRefs
// directly; cp != nil means resume using the continuation point's own
// stored description.
func (e *Engine) browseSingle(session *Session, cache *referenceTypeCache, cp *continuationPointEntry, descr *BrowseDescription, maxRefs uint32) BrowseResult {
	internal := cp
	if internal == nil {
		internal = &continuationPointEntry{maxReferences: maxRefs}
	} else {
		descr = &cp.browseDescription
	}

	if !descr.Direction.valid() {
		return BrowseResult{Status: StatusBadBrowseDirectionInvalid}
	}

	relevantTypes, err := cache.resolve(descr.ReferenceTypeID, descr.IncludeSubtypes)
	if err != nil {
		e.logger.Debug("reference type hierarchy resolution failed",
			"referenceType", descr.ReferenceTypeID.String())
		return BrowseResult{Status: StatusFromErr(err)}
	}

	node, ok := e.store.Get(descr.NodeID)
	if !ok {
		return BrowseResult{Status: StatusBadNodeIDUnknown}
	}

	refs, done := e.browseRelevantReferences(node, descr, relevantTypes, internal)
	internal.continuationIndex += uint32(len(refs))

	if e.metrics != nil {
		e.metrics.ReferencesEmitted.Observe(float64(len(refs)))
	}

	result := BrowseResult{Status: StatusOK, References: refs}

	if cp != nil {
		// Resuming an existing continuation point.
		if done {
			session.remove(cp)
			if e.metrics != nil {
				e.metrics.ContinuationPointsReleased.Inc()
			}
		} else {
			result.ContinuationPoint = cloneIdentifier(cp.identifier)
		}
		return result
	}

	// Fresh call: create a new continuation point if references remain.
	if !done {
		identifier, err := session.newIdentifier()
		if err != nil {
			return BrowseResult{Status: StatusBadOutOfMemory}
		}
		newCP := &continuationPointEntry{
			identifier:        identifier,
			continuationIndex: internal.continuationIndex,
			maxReferences:     internal.maxReferences,
			browseDescription: *descr,
		}
		if !session.insert(newCP) {
			if e.metrics != nil {
				e.metrics.ContinuationPointsExhausted.Inc()
			}
			return BrowseResult{Status: StatusBadNoContinuationPoints}
		}
		if e.metrics != nil {
			e.metrics.ContinuationPointsIssued.Inc()
		}
		result.ContinuationPoint = cloneIdentifier(newCP.identifier)
	}

	return result
}

func cloneIdentifier(id [16]byte) []byte {
	out := make([]byte, 16)
	copy(out, id[:])
	return out
}

// browseNextSingle locates the continuation point named by identifier in
// session and either releases it or resumes it.
func (e *Engine) browseNextSingle(session *Session, cache *referenceTypeCache, release bool, identifier []byte) BrowseResult {
	cp := session.find(identifier)
	if cp == nil {
		return BrowseResult{Status: StatusBadContinuationPointInvalid}
	}
	if release {
		session.remove(cp)
		if e.metrics != nil {
			e.metrics.ContinuationPointsReleased.Inc()
		}
		return BrowseResult{Status: StatusOK}
	}
	return e.browseSingle(session, cache, cp, nil, 0)
}

// Browse implements the Browse service: one BrowseResult per element of
// nodesToBrowse, each element's failure isolated from its siblings. view
// must be the null NodeID; this package does not implement named views.
func (e *Engine) Browse(session *Session, view NodeID, nodesToBrowse []BrowseDescription, maxReferencesPerNode uint32) ([]BrowseResult, error) {
	if !view.IsNull() {
		return nil, statusErr(StatusBadViewIDUnknown)
	}
	if len(nodesToBrowse) == 0 {
		return nil, statusErr(StatusBadNothingToDo)
	}

	cache := newReferenceTypeCache(e.store)
	results := make([]BrowseResult, len(nodesToBrowse))
	for i := range nodesToBrowse {
		results[i] = e.browseSingle(session, cache, nil, &nodesToBrowse[i], maxReferencesPerNode)
	}
	return results, nil
}

// BrowseNext implements the BrowseNext service: resume or release each
// continuation point in continuationPoints independently.
func (e *Engine) BrowseNext(session *Session, release bool, continuationPoints [][]byte) ([]BrowseResult, error) {
	if len(continuationPoints) == 0 {
		return nil, statusErr(StatusBadNothingToDo)
	}

	cache := newReferenceTypeCache(e.store)
	results := make([]BrowseResult, len(continuationPoints))
	for i, identifier := range continuationPoints {
		results[i] = e.browseNextSingle(session, cache, release, identifier)
	}
	return results, nil
}

// BrowseOne is a convenience single-path entry point wrapping Browse with
// the engine's internal administrative session.
func (e *Engine) BrowseOne(descr BrowseDescription, maxReferences uint32) BrowseResult {
	cache := newReferenceTypeCache(e.store)
	return e.browseSingle(e.adminSession(), cache, nil, &descr, maxReferences)
}

// BrowseNextOne is the convenience single-path counterpart to BrowseNext.
func (e *Engine) BrowseNextOne(release bool, continuationPoint []byte) BrowseResult {
	cache := newReferenceTypeCache(e.store)
	return e.browseNextSingle(e.adminSession(), cache, release, continuationPoint)
}
