package opcuaview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterNodes(t *testing.T) {
	known := NewNumericNodeID(1, 1)
	store := newTestStore()
	store.add(objectNode(known, "Known"))
	e := newEngine(store)

	t.Run("echoes back known ids", func(t *testing.T) {
		got, err := e.RegisterNodes([]NodeID{known})
		require.NoError(t, err)
		assert.Equal(t, []NodeID{known}, got)
	})

	t.Run("empty input is BadNothingToDo", func(t *testing.T) {
		_, err := e.RegisterNodes(nil)
		assert.ErrorIs(t, err, ErrNothingToDo)
	})

	t.Run("unknown ids are echoed back unvalidated", func(t *testing.T) {
		unknown := NewNumericNodeID(9, 9)
		got, err := e.RegisterNodes([]NodeID{unknown})
		require.NoError(t, err)
		assert.Equal(t, []NodeID{unknown}, got)
	})
}

func TestUnregisterNodes(t *testing.T) {
	store := newTestStore()
	e := newEngine(store)

	t.Run("unknown ids are silently accepted", func(t *testing.T) {
		err := e.UnregisterNodes([]NodeID{NewNumericNodeID(9, 9)})
		assert.NoError(t, err)
	})

	t.Run("empty input is BadNothingToDo", func(t *testing.T) {
		err := e.UnregisterNodes(nil)
		assert.ErrorIs(t, err, ErrNothingToDo)
	})
}
