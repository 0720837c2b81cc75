package opcuaview

import (
	"fmt"

	"github.com/o16s/opcuaview/internal/idprovider"
	"github.com/o16s/opcuaview/internal/logging"
)

// continuationPointEntry is a continuation point as the session owns it:
// identifier, replay position, and the browse description to resume with.
// A C implementation might promote a stack-allocated placeholder to the
// heap only once pagination is actually required; since Go has no
// meaningful stack/heap distinction a caller can observe, this package
// always builds one and simply discards it when it isn't needed.
type continuationPointEntry struct {
	identifier        [16]byte
	continuationIndex uint32
	maxReferences     uint32
	browseDescription BrowseDescription
}

// SessionOption configures a Session at construction time, the same
// functional-options shape gopcua uses to assemble client options
// (opcua.DialTimeout(...), opcua.Certificate(...), ...).
type SessionOption func(*Session)

// WithLogger attaches a logger handle to the session.
func WithLogger(l logging.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// WithIDProvider overrides the continuation-point identifier source. Tests
// use this to install idprovider.NewMock() for deterministic ids.
func WithIDProvider(p idprovider.Provider) SessionOption {
	return func(s *Session) { s.ids = p }
}

// Session is the mutable, per-client-session state: a list of live
// continuation points and a remaining-quota counter. The server guarantees
// at most one in-flight service call per session, so Session does no
// internal locking — it is not safe for concurrent use from two goroutines
// representing the same session, only safe for many Sessions to be driven
// concurrently by different goroutines. This mirrors the way a single
// clientMutex-guarded *opcua.Client pointer is protected elsewhere: lock
// around the shared handle, never around per-call logic.
type Session struct {
	quota           int
	initialQuota    int
	continuationPts []*continuationPointEntry
	logger          logging.Logger
	ids             idprovider.Provider
}

// NewSession creates a Session with the given continuation-point quota.
func NewSession(quota int, opts ...SessionOption) *Session {
	s := &Session{
		quota:        quota,
		initialQuota: quota,
		logger:       logging.Nop(),
		ids:          idprovider.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AvailableContinuationPoints returns the session's remaining quota.
func (s *Session) AvailableContinuationPoints() int {
	return s.quota
}

// LiveContinuationPoints returns the number of continuation points
// currently owned by the session.
func (s *Session) LiveContinuationPoints() int {
	return len(s.continuationPts)
}

// find returns the continuation point matching identifier, or nil.
func (s *Session) find(identifier []byte) *continuationPointEntry {
	if len(identifier) != 16 {
		return nil
	}
	var want [16]byte
	copy(want[:], identifier)
	for _, cp := range s.continuationPts {
		if cp.identifier == want {
			return cp
		}
	}
	return nil
}

// remove detaches cp from the session and restores one unit of quota.
func (s *Session) remove(cp *continuationPointEntry) {
	for i, candidate := range s.continuationPts {
		if candidate == cp {
			s.continuationPts = append(s.continuationPts[:i], s.continuationPts[i+1:]...)
			s.quota++
			s.logger.Debug("continuation point removed", "identifier", fmt.Sprintf("%x", cp.identifier))
			return
		}
	}
}

// insert attaches a freshly built cp at the head of the session's list and
// consumes one unit of quota. Returns false if the quota was exhausted.
func (s *Session) insert(cp *continuationPointEntry) bool {
	if s.quota <= 0 {
		return false
	}
	s.continuationPts = append([]*continuationPointEntry{cp}, s.continuationPts...)
	s.quota--
	s.logger.Debug("continuation point issued", "identifier", fmt.Sprintf("%x", cp.identifier))
	return true
}

// newIdentifier asks the session's id provider for a fresh continuation
// point identifier.
func (s *Session) newIdentifier() ([16]byte, error) {
	return s.ids.ID()
}
