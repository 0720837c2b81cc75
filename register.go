package opcuaview

// RegisterNodes implements the RegisterNodes service as a pass-through
// that hands the same ids back, reserving the hook for a server that wants
// to hand out an optimized alias. This package has no such optimization, so
// it echoes nodesToRegister verbatim; ids are not required to resolve,
// since a client may register nodes it intends to create or discover later.
func (e *Engine) RegisterNodes(nodesToRegister []NodeID) ([]NodeID, error) {
	if len(nodesToRegister) == 0 {
		return nil, statusErr(StatusBadNothingToDo)
	}

	registered := make([]NodeID, len(nodesToRegister))
	copy(registered, nodesToRegister)
	return registered, nil
}

// UnregisterNodes implements the UnregisterNodes service. Apart from
// BadNothingToDo on empty input it has no failure mode: unknown ids are
// silently ignored, since unregistering is advisory cleanup, not a lookup.
func (e *Engine) UnregisterNodes(nodesToUnregister []NodeID) error {
	if len(nodesToUnregister) == 0 {
		return statusErr(StatusBadNothingToDo)
	}
	return nil
}
