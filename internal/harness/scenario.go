package harness

import (
	"fmt"

	"github.com/roach88/rerun/internal/state"
	"github.com/roach88/rerun/internal/wire"
)

// defaultRunToken keeps golden traces deterministic when a scenario does
// not care about the token.
const defaultRunToken = "test-run-default"

// Script is the app code under test: it registers widgets against the
// provided run context.
type Script func(ctx *state.Context) error

// Scenario defines one scripted run and its external inputs.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string

	// Script is executed once against a fresh context.
	Script Script

	// Page is the requested page hash; empty means no page routing.
	Page string

	// ClientValues maps widget identities to the interaction payloads the
	// client sent with the rerun request.
	ClientValues map[string][]int64

	// SessionWrites maps user keys to forced session-state writes parked
	// before the run starts.
	SessionWrites map[string][]int64

	// RunToken is an optional fixed run token for traceability. Empty
	// defaults to defaultRunToken.
	RunToken string
}

// Result is the observable outcome of one scripted run.
type Result struct {
	RunToken string
	// Messages holds the outgoing envelopes in script order.
	Messages []wire.Envelope
}

// Run executes the scenario. Widget values are observed by the script
// itself (capture them in the closure); Run reports the wire side.
func Run(s *Scenario) (*Result, error) {
	if s.Name == "" {
		return nil, fmt.Errorf("scenario: name is required")
	}
	if s.Script == nil {
		return nil, fmt.Errorf("scenario %s: script is required", s.Name)
	}

	token := s.RunToken
	if token == "" {
		token = defaultRunToken
	}

	session := state.NewSession()
	for key, payload := range s.SessionWrites {
		session.ForceWrite(key, payload)
	}

	opts := make([]state.ContextOption, 0, len(s.ClientValues)+1)
	if s.Page != "" {
		opts = append(opts, state.WithPage(s.Page))
	}
	for id, payload := range s.ClientValues {
		opts = append(opts, state.WithClientValue(id, payload))
	}

	queue := wire.NewQueue()
	ctx := state.NewContext(token, session, queue, opts...)

	if err := s.Script(ctx); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	return &Result{RunToken: token, Messages: queue.Drain()}, nil
}
