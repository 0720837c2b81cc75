package opcuaview

import "github.com/o16s/opcuaview/internal/memstore"

// testStore adapts memstore.Store to this package's NodeStore interface for
// table-driven tests across resolver_test.go, filter_test.go, browse_test.go
// and path_test.go.
type testStore struct {
	*memstore.Store[NodeID, *Node]
}

func newTestStore() *testStore {
	return &testStore{Store: memstore.New[NodeID, *Node]()}
}

func (s *testStore) add(n *Node) {
	s.Put(n.NodeID, n)
}

// refTypeNode builds a minimal ReferenceType node.
func refTypeNode(id NodeID, name string) *Node {
	return &Node{
		NodeID:      id,
		NodeClass:   NodeClassReferenceType,
		BrowseName:  QualifiedName{Namespace: id.Namespace, Name: name},
		DisplayName: name,
	}
}

// addSubtype records child as a direct subtype of parent: a forward
// HasSubtype reference on parent, and the matching inverse edge on child.
func addSubtype(parent, child *Node) {
	parent.References = append(parent.References, Reference{
		ReferenceTypeID: NodeIDHasSubtype,
		IsInverse:       false,
		TargetID:        ExpandedNodeID{NodeID: child.NodeID},
	})
	child.References = append(child.References, Reference{
		ReferenceTypeID: NodeIDHasSubtype,
		IsInverse:       true,
		TargetID:        ExpandedNodeID{NodeID: parent.NodeID},
	})
}

// objectNode builds a minimal Object node with the given forward references.
func objectNode(id NodeID, name string, refs ...Reference) *Node {
	return &Node{
		NodeID:      id,
		NodeClass:   NodeClassObject,
		BrowseName:  QualifiedName{Namespace: id.Namespace, Name: name},
		DisplayName: name,
		References:  refs,
	}
}
