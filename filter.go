package opcuaview

// acceptReference implements the reference filter: decide whether ref is
// visible under descr, and if so return the node it points at.
// relevantTypes == nil means "all reference types match" (the caller
// already resolved a null ReferenceTypeID into that sentinel).
func acceptReference(store NodeStore, descr *BrowseDescription, ref Reference, relevantTypes []NodeID) *Node {
	switch descr.Direction {
	case BrowseDirectionForward:
		if ref.IsInverse {
			return nil
		}
	case BrowseDirectionInverse:
		if !ref.IsInverse {
			return nil
		}
	}
	// BrowseDirectionBoth accepts either.

	if relevantTypes != nil && !containsNodeID(relevantTypes, ref.ReferenceTypeID) {
		return nil
	}

	if !ref.TargetID.IsLocal() {
		return nil
	}
	target, ok := store.Get(ref.TargetID.NodeID)
	if !ok {
		return nil
	}

	if descr.NodeClassMask != 0 && target.NodeClass&descr.NodeClassMask == 0 {
		return nil
	}

	return target
}

func containsNodeID(set []NodeID, id NodeID) bool {
	for _, candidate := range set {
		if candidate == id {
			return true
		}
	}
	return false
}

// fillReferenceDescription builds a ReferenceDescription for target/ref,
// populating only the fields resultMask selects. Every field copied is a
// value copy, never an aliased slice or pointer into target or ref, so
// attribute copies stay deep.
func fillReferenceDescription(target *Node, ref Reference, resultMask ResultMask) ReferenceDescription {
	descr := ReferenceDescription{TargetID: target.NodeID}

	if resultMask.has(ResultMaskReferenceTypeID) {
		descr.ReferenceTypeID = ref.ReferenceTypeID
	}
	if resultMask.has(ResultMaskIsForward) {
		descr.IsForward = !ref.IsInverse
	}
	if resultMask.has(ResultMaskNodeClass) {
		descr.NodeClass = target.NodeClass
	}
	if resultMask.has(ResultMaskBrowseName) {
		descr.BrowseName = target.BrowseName
	}
	if resultMask.has(ResultMaskDisplayName) {
		descr.DisplayName = target.DisplayName
	}
	if resultMask.has(ResultMaskTypeDefinition) {
		if target.NodeClass == NodeClassObject || target.NodeClass == NodeClassVariable {
			descr.TypeDefinition = findTypeDefinition(target)
		}
	}

	return descr
}

// findTypeDefinition scans target's own references for the first
// HasTypeDefinition edge. Absence leaves the zero value.
func findTypeDefinition(target *Node) ExpandedNodeID {
	for _, ref := range target.References {
		if !ref.IsInverse && ref.ReferenceTypeID == NodeIDHasTypeDefinition {
			return ref.TargetID
		}
	}
	return ExpandedNodeID{}
}
