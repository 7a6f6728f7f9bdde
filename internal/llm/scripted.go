package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// Reply is one canned answer of a Scripted provider.
type Reply struct {
	Body   string
	Tokens Tokens
	Err    error
}

// Scripted answers prompts from a queue, for tests and the "mock"
// provider. An empty queue answers with ErrUnavailable.
type Scripted struct {
	mu      sync.Mutex
	replies []Reply
	prompts []Prompt
}

func NewScripted(replies ...Reply) *Scripted {
	return &Scripted{replies: replies}
}

func (s *Scripted) Complete(_ context.Context, p Prompt) (*Completion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = append(s.prompts, p)
	if len(s.replies) == 0 {
		return nil, &ErrUnavailable{}
	}
	r := s.replies[0]
	s.replies = s.replies[1:]
	if r.Err != nil {
		return nil, r.Err
	}
	return &Completion{
		Body:   json.RawMessage(r.Body),
		Model:  "scripted",
		Tokens: r.Tokens,
		Stop:   StopEnd,
	}, nil
}

func (s *Scripted) Name() string  { return "mock" }
func (s *Scripted) Model() string { return "scripted" }

// Then queues another reply.
func (s *Scripted) Then(r Reply) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, r)
	return s
}

// Prompts returns the prompts received so far.
func (s *Scripted) Prompts() []Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Prompt(nil), s.prompts...)
}
