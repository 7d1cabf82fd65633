package memory

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/aretw0/rofiflow/pkg/domain"
	"github.com/aretw0/rofiflow/pkg/window"
)

// ErrScriptExhausted is returned when Select is called after the last scripted reply.
var ErrScriptExhausted = errors.New("no scripted reply left")

// Reply is one scripted selector response.
type Reply struct {
	// Raw is printed on the fake stdout and parsed like a real reply.
	Raw string

	// Pick, when set, chooses an option by text in either return format:
	// it becomes the text itself, or its index (-1 if unlisted) in index mode.
	Pick string

	// ExitCode is reported in the Answer.
	ExitCode int

	// Err fails the invocation. Errors that are not *domain.InvocationError are
	// wrapped as communication failures.
	Err error
}

// Call records one invocation.
type Call struct {
	Window  window.Window
	Options []string
}

// Selector implements ports.Selector with scripted replies, for tests and dry runs.
// Safe for concurrent use.
type Selector struct {
	mu      sync.Mutex
	replies []Reply
	calls   []Call
}

// NewSelector creates a Selector answering with the given replies in order.
func NewSelector(replies ...Reply) *Selector {
	return &Selector{replies: replies}
}

// Picks creates a Selector choosing the given option texts in order.
func Picks(texts ...string) *Selector {
	s := &Selector{}
	for _, text := range texts {
		s.replies = append(s.replies, Reply{Pick: text})
	}
	return s
}

// Failing creates a Selector whose next invocation fails with cause.
func Failing(cause error) *Selector {
	return NewSelector(Reply{Err: cause})
}

// Push appends replies to the script.
func (s *Selector) Push(replies ...Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, replies...)
}

// Remaining returns how many replies are left.
func (s *Selector) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.replies)
}

// Calls returns a copy of the recorded invocations.
func (s *Selector) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// LastCall returns the most recent invocation.
func (s *Selector) LastCall() (Call, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return Call{}, false
	}
	return s.calls[len(s.calls)-1], true
}

// Select pops the next reply and parses it against options.
func (s *Selector) Select(ctx context.Context, w window.Window, options []string) (domain.Answer, error) {
	noAnswer := domain.Answer{Index: domain.NoIndex}
	if err := ctx.Err(); err != nil {
		return noAnswer, &domain.InvocationError{Op: domain.ErrAbnormalExit, Err: err}
	}

	s.mu.Lock()
	s.calls = append(s.calls, Call{Window: w, Options: append([]string(nil), options...)})
	if len(s.replies) == 0 {
		s.mu.Unlock()
		return noAnswer, &domain.InvocationError{Op: domain.ErrCommunicate, Err: ErrScriptExhausted}
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	s.mu.Unlock()

	if reply.Err != nil {
		var invErr *domain.InvocationError
		if errors.As(reply.Err, &invErr) {
			return noAnswer, reply.Err
		}
		return noAnswer, &domain.InvocationError{Op: domain.ErrCommunicate, Err: reply.Err}
	}

	raw := reply.Raw
	if reply.Pick != "" {
		raw = pickRaw(w.GetFormat(), reply.Pick, options)
	}

	text, index := window.ParseReply(w.GetFormat(), raw, options)
	return domain.Answer{Text: text, Index: index, ExitCode: reply.ExitCode}, nil
}

func pickRaw(format window.ReturnFormat, pick string, options []string) string {
	if format == window.FormatText {
		return pick + "\n"
	}
	for i, o := range options {
		if o == pick {
			return strconv.Itoa(i)
		}
	}
	return "-1"
}
