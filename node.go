package opcuaview

// NodeClass mirrors the OPC UA NodeClass enumeration (Part 3, §5.2.6). The
// numeric values match gopcua's ua.NodeClass constants bit for bit, so a
// NodeClassMask built from this package's constants composes directly with
// one built from gopcua's.
type NodeClass uint32

const (
	NodeClassObject         NodeClass = 1 << 0
	NodeClassVariable       NodeClass = 1 << 1
	NodeClassMethod         NodeClass = 1 << 2
	NodeClassObjectType     NodeClass = 1 << 3
	NodeClassVariableType   NodeClass = 1 << 4
	NodeClassReferenceType  NodeClass = 1 << 5
	NodeClassDataType       NodeClass = 1 << 6
	NodeClassView           NodeClass = 1 << 7
	NodeClassAll            NodeClass = 0 // zero means "any class" in a BrowseDescription mask
)

// Well-known reference-type numeric ids, namespace 0. These are the same
// ids gopcua's id package exports (id.References, id.HasSubtype, ...), kept
// here so a caller already holding gopcua id.* constants can pass them
// through NodeID values without translation.
const (
	RefTypeReferences             = 31
	RefTypeHierarchicalReferences = 33
	RefTypeHasChild               = 34
	RefTypeOrganizes              = 35
	RefTypeHasComponent           = 47
	RefTypeHasProperty            = 46
	RefTypeHasSubtype             = 45
	RefTypeHasTypeDefinition      = 40
)

// NodeIDHasSubtype is the reference type the hierarchy resolver follows to
// build a subtype closure.
var NodeIDHasSubtype = NewNumericNodeID(0, RefTypeHasSubtype)

// NodeIDHasTypeDefinition is the reference type the descriptor builder
// scans for when filling ReferenceDescription.TypeDefinition.
var NodeIDHasTypeDefinition = NewNumericNodeID(0, RefTypeHasTypeDefinition)

// Reference is a directed, typed edge belonging to the source node it was
// read from. Direction relative to the source is carried in IsInverse, not
// in a separate source/target pair.
type Reference struct {
	ReferenceTypeID NodeID
	IsInverse       bool
	TargetID        ExpandedNodeID
}

// Node is an immutable (for the duration of one service call) snapshot of
// an address-space node, as handed back by a NodeStore.
type Node struct {
	NodeID      NodeID
	NodeClass   NodeClass
	BrowseName  QualifiedName
	DisplayName string
	Description string
	WriteMask   uint32
	References  []Reference
}

// NodeStore is the narrow external collaborator the view services need: a
// read-only, borrowed-snapshot view over the address space. Implementations
// must hold whatever locking discipline they need for the duration of Get
// and must never mutate the returned Node afterward; this package never
// mutates it either.
type NodeStore interface {
	// Get returns the node with the given id, or ok=false if it isn't
	// present in the address space.
	Get(id NodeID) (node *Node, ok bool)
}
