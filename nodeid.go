package opcuaview

import "fmt"

// IdentifierType tags which encoding a NodeID's identifier uses.
type IdentifierType uint8

const (
	IdentifierNumeric IdentifierType = iota
	IdentifierString
	IdentifierGUID
	IdentifierOpaque
)

// NodeID is a value type: namespace index plus a tagged identifier. Two
// NodeIDs are equal iff their namespace and identifier encoding and value
// are equal, so NodeID supports == and is safe as a map key.
type NodeID struct {
	Namespace uint16
	Type      IdentifierType
	Numeric   uint32
	Str       string
	GUID      [16]byte
	Opaque    string // byte string identifier, held as string for comparability
}

// NewNumericNodeID builds a numeric NodeID, the encoding used by every
// well-known reference type id in this package.
func NewNumericNodeID(ns uint16, id uint32) NodeID {
	return NodeID{Namespace: ns, Type: IdentifierNumeric, Numeric: id}
}

// NewStringNodeID builds a string-identifier NodeID.
func NewStringNodeID(ns uint16, id string) NodeID {
	return NodeID{Namespace: ns, Type: IdentifierString, Str: id}
}

// IsNull reports whether id is the OPC UA null NodeID (ns=0, numeric
// identifier 0), the sentinel used for "no reference-type filter"
// and "no view selected".
func (id NodeID) IsNull() bool {
	return id.Namespace == 0 && id.Type == IdentifierNumeric && id.Numeric == 0
}

func (id NodeID) String() string {
	switch id.Type {
	case IdentifierNumeric:
		return fmt.Sprintf("ns=%d;i=%d", id.Namespace, id.Numeric)
	case IdentifierString:
		return fmt.Sprintf("ns=%d;s=%s", id.Namespace, id.Str)
	case IdentifierGUID:
		return fmt.Sprintf("ns=%d;g=%x", id.Namespace, id.GUID)
	case IdentifierOpaque:
		return fmt.Sprintf("ns=%d;b=%s", id.Namespace, id.Opaque)
	default:
		return fmt.Sprintf("ns=%d;?", id.Namespace)
	}
}

// ExpandedNodeID is a NodeID plus the two fields that let it name a node
// outside the local server: an optional namespace URI override and a
// server index. ServerIndex != 0 marks a cross-server target.
type ExpandedNodeID struct {
	NodeID       NodeID
	NamespaceURI string
	ServerIndex  uint32
}

// IsLocal reports whether the target lives in this server's address space.
func (e ExpandedNodeID) IsLocal() bool {
	return e.ServerIndex == 0
}

// QualifiedName is a namespaced browse name. It is null when Name is empty.
type QualifiedName struct {
	Namespace uint16
	Name      string
}

// IsNull reports whether q carries no name.
func (q QualifiedName) IsNull() bool {
	return q.Name == ""
}

// Equal reports structural equality, the predicate the path resolver uses
// to test a node's BrowseName against a RelativePathElement's TargetName.
func (q QualifiedName) Equal(o QualifiedName) bool {
	return q.Namespace == o.Namespace && q.Name == o.Name
}
