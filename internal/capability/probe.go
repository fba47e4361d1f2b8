// Package capability detects at runtime whether the remote schema accepts an
// optional mutation field. The remote service does not document which
// accounts support the field, so the first mutation acts as a probe and the
// answer is remembered for the rest of the process.
package capability

import (
	"errors"
	"strings"
	"sync"

	"github.com/jonathan/shelf-agent/internal/graphql"
)

// State is the probe's tri-state answer for the optional field.
type State int

const (
	// Unknown means no probe has completed yet.
	Unknown State = iota
	// Supported means a mutation including the field succeeded.
	Supported
	// Unsupported means the remote rejected the field by name.
	Unsupported
)

func (s State) String() string {
	switch s {
	case Supported:
		return "supported"
	case Unsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Probe is a shared, sticky capability cell for one optional mutation field.
// It is created once in the composition root and shared by every client in
// the process; once Supported or Unsupported is set it never reverts.
type Probe struct {
	field string

	mu    sync.Mutex
	state State
}

// NewProbe creates a probe for the named optional field.
func NewProbe(field string) *Probe {
	return &Probe{field: field}
}

// Field returns the optional field name the probe manages.
func (p *Probe) Field() string {
	return p.field
}

// State returns the current capability state.
func (p *Probe) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Execute runs the mutation, including the optional field unless the probe
// already knows it is unsupported. If the attempt with the field fails with
// an error that names the field, the state flips to Unsupported and the
// mutation is re-issued exactly once without the field; that outcome is
// returned instead. The second attempt never includes the field, so there is
// no retry loop. Any other failure propagates unchanged and leaves the state
// alone.
func (p *Probe) Execute(do func(includeField bool) error) error {
	prior := p.State()
	include := prior != Unsupported

	err := do(include)
	if err == nil {
		if prior == Unknown {
			p.markSupported()
		}
		return nil
	}

	if prior == Unknown && p.rejectsField(err) {
		p.markUnsupported()
		return do(false)
	}

	return err
}

// rejectsField reports whether the error names the optional field, either in
// its text or in the structured path of a remote error object.
func (p *Probe) rejectsField(err error) bool {
	var qe *graphql.QueryError
	if errors.As(err, &qe) {
		for _, re := range qe.Errors {
			if strings.Contains(re.Message, p.field) {
				return true
			}
			for _, segment := range re.Path {
				if s, ok := segment.(string); ok && strings.Contains(s, p.field) {
					return true
				}
			}
		}
		return false
	}
	return strings.Contains(err.Error(), p.field)
}

func (p *Probe) markSupported() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Unknown {
		p.state = Supported
	}
}

func (p *Probe) markUnsupported() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Unknown {
		p.state = Unsupported
	}
}
