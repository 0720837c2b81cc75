package opcuaview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReferenceTypeHierarchy(t *testing.T) {
	references := NewNumericNodeID(0, RefTypeReferences)
	hierarchical := NewNumericNodeID(0, RefTypeHierarchicalReferences)
	organizes := NewNumericNodeID(0, RefTypeOrganizes)
	hasComponent := NewNumericNodeID(0, RefTypeHasComponent)
	notAType := NewNumericNodeID(0, 9999)

	store := newTestStore()
	refsNode := refTypeNode(references, "References")
	hierNode := refTypeNode(hierarchical, "HierarchicalReferences")
	orgNode := refTypeNode(organizes, "Organizes")
	compNode := refTypeNode(hasComponent, "HasComponent")
	addSubtype(refsNode, hierNode)
	addSubtype(hierNode, orgNode)
	addSubtype(hierNode, compNode)
	store.add(refsNode)
	store.add(hierNode)
	store.add(orgNode)
	store.add(compNode)
	store.add(objectNode(notAType, "NotAReferenceType"))

	t.Run("no subtypes returns only the root", func(t *testing.T) {
		got, err := resolveReferenceTypeHierarchy(store, organizes, false)
		require.NoError(t, err)
		assert.Equal(t, []NodeID{organizes}, got)
	})

	t.Run("subtypes includes the full transitive closure", func(t *testing.T) {
		got, err := resolveReferenceTypeHierarchy(store, hierarchical, true)
		require.NoError(t, err)
		assert.ElementsMatch(t, []NodeID{hierarchical, organizes, hasComponent}, got)
	})

	t.Run("leaf type with subtypes returns just itself", func(t *testing.T) {
		got, err := resolveReferenceTypeHierarchy(store, organizes, true)
		require.NoError(t, err)
		assert.Equal(t, []NodeID{organizes}, got)
	})

	t.Run("unknown root is BadReferenceTypeIdInvalid", func(t *testing.T) {
		_, err := resolveReferenceTypeHierarchy(store, NewNumericNodeID(0, 0xBEEF), false)
		assert.ErrorIs(t, err, ErrReferenceTypeIDInvalid)
	})

	t.Run("node of the wrong class is BadReferenceTypeIdInvalid", func(t *testing.T) {
		_, err := resolveReferenceTypeHierarchy(store, notAType, false)
		assert.ErrorIs(t, err, ErrReferenceTypeIDInvalid)
	})
}

func TestReferenceTypeCache(t *testing.T) {
	organizes := NewNumericNodeID(0, RefTypeOrganizes)
	store := newTestStore()
	store.add(refTypeNode(organizes, "Organizes"))

	t.Run("null root means no filter", func(t *testing.T) {
		cache := newReferenceTypeCache(store)
		got, err := cache.resolve(NodeID{}, false)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("repeated resolve reuses the cached slice", func(t *testing.T) {
		cache := newReferenceTypeCache(store)
		first, err := cache.resolve(organizes, false)
		require.NoError(t, err)
		second, err := cache.resolve(organizes, false)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, len(cache.cache))
	})

	t.Run("failed resolution is not cached as a false negative", func(t *testing.T) {
		cache := newReferenceTypeCache(store)
		_, err := cache.resolve(NewNumericNodeID(0, 0xBEEF), false)
		assert.Error(t, err)
		assert.Empty(t, cache.cache)
	})
}
