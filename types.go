package opcuaview

// BrowseDirection restricts which references a Browse call returns,
// relative to the starting node.
type BrowseDirection uint8

const (
	BrowseDirectionForward BrowseDirection = iota
	BrowseDirectionInverse
	BrowseDirectionBoth
)

func (d BrowseDirection) valid() bool {
	return d == BrowseDirectionForward || d == BrowseDirectionInverse || d == BrowseDirectionBoth
}

// ResultMask bits select which ReferenceDescription fields Browse fills in.
type ResultMask uint32

const (
	ResultMaskReferenceTypeID ResultMask = 1 << 0
	ResultMaskIsForward       ResultMask = 1 << 1
	ResultMaskNodeClass       ResultMask = 1 << 2
	ResultMaskBrowseName      ResultMask = 1 << 3
	ResultMaskDisplayName     ResultMask = 1 << 4
	ResultMaskTypeDefinition  ResultMask = 1 << 5
	ResultMaskAll             ResultMask = ResultMaskReferenceTypeID | ResultMaskIsForward |
		ResultMaskNodeClass | ResultMaskBrowseName | ResultMaskDisplayName | ResultMaskTypeDefinition
)

func (m ResultMask) has(bit ResultMask) bool {
	return m&bit != 0
}

// BrowseDescription is one client-requested browse unit.
type BrowseDescription struct {
	NodeID          NodeID
	Direction       BrowseDirection
	ReferenceTypeID NodeID // null NodeID means "all reference types"
	IncludeSubtypes bool
	NodeClassMask   NodeClass // 0 means "any class"
	ResultMask      ResultMask
}

// ReferenceDescription is one entry in a BrowseResult. Fields beyond
// TargetID are populated only when the corresponding ResultMask bit was set
// on the originating BrowseDescription; mask-fidelity invariant.
type ReferenceDescription struct {
	TargetID        NodeID
	ReferenceTypeID NodeID
	IsForward       bool
	NodeClass       NodeClass
	BrowseName      QualifiedName
	DisplayName     string
	TypeDefinition  ExpandedNodeID
}

// BrowseResult is the per-element outcome of a Browse or BrowseNext call.
type BrowseResult struct {
	Status            StatusCode
	References        []ReferenceDescription
	ContinuationPoint []byte // non-nil iff more references remain
}

// RelativePathElement is one step of a BrowsePath: a reference-type
// predicate plus the browse name the step's target must carry.
type RelativePathElement struct {
	ReferenceTypeID NodeID
	IsInverse       bool
	IncludeSubtypes bool
	TargetName      QualifiedName
}

// BrowsePath is a starting node plus an ordered sequence of relative path
// elements to walk from it.
type BrowsePath struct {
	StartingNode NodeID
	Elements     []RelativePathElement
}

// RemainingPathIndexFullyResolved marks a BrowsePathTarget reached by
// consuming every element of its BrowsePath (UINT32_MAX sentinel).
const RemainingPathIndexFullyResolved = ^uint32(0)

// BrowsePathTarget is one resolved (or partially resolved, for
// cross-server delegation) target of a BrowsePath.
type BrowsePathTarget struct {
	TargetID           ExpandedNodeID
	RemainingPathIndex uint32
}

// BrowsePathResult is the per-path outcome of TranslateBrowsePathsToNodeIds.
type BrowsePathResult struct {
	Status  StatusCode
	Targets []BrowsePathTarget
}
