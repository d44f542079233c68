// Package chat simulates the support chat widget with canned replies.
package chat

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Sender string

const (
	User Sender = "user"
	Bot  Sender = "bot"
)

const Greeting = "Hello! I'm here to provide support. How are you feeling today?"

// Replies are the canned bot responses.
var Replies = []string{
	"I'm here to listen. Can you tell me more about how you're feeling?",
	"That sounds difficult. Have you tried talking to someone about this?",
	"Remember, it's okay to not be okay. Would you like some resources to help?",
	"I'm not a therapist, but I can suggest some coping strategies if you'd like.",
	"Many people find mindfulness exercises helpful. Would you like me to share one?",
	"It's important to reach out to a professional if you're struggling. Can I help you find one?",
	"You're not alone in this. There are people who care and want to help.",
	"Taking things one step at a time can help. Is there something small you can do for yourself today?",
}

type Message struct {
	ID        string
	Text      string
	Sender    Sender
	Timestamp time.Time
}

// Rand picks reply indexes and typing jitter.
type Rand interface {
	IntN(n int) int
}

// Delay blocks for d or until ctx is done.
type Delay func(ctx context.Context, d time.Duration) error

// Sleep is the real-time Delay.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NoDelay returns immediately unless ctx is already done.
func NoDelay(ctx context.Context, _ time.Duration) error { return ctx.Err() }

// Simulator holds one chat session.
type Simulator struct {
	mu       sync.Mutex
	rnd      Rand
	delay    Delay
	now      func() time.Time
	messages []Message
	typing   bool
}

type Option func(*Simulator)

func WithRand(r Rand) Option   { return func(s *Simulator) { s.rnd = r } }
func WithDelay(d Delay) Option { return func(s *Simulator) { s.delay = d } }
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) { s.now = now }
}

// New starts a session with the greeting already posted.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		rnd:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		delay: Sleep,
		now:   time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.add(Bot, Greeting)
	return s
}

func (s *Simulator) add(from Sender, text string) Message {
	m := Message{ID: uuid.NewString(), Text: text, Sender: from, Timestamp: s.now()}
	s.mu.Lock()
	s.messages = append(s.messages, m)
	s.mu.Unlock()
	return m
}

// TypingDelay is how long the bot "types" before replying: 1s plus up to 2s of jitter.
func (s *Simulator) TypingDelay() time.Duration {
	return time.Second + time.Duration(s.rnd.IntN(2000))*time.Millisecond
}

// Send posts text from the user and waits for the bot's reply. Blank input is
// ignored and returns ok=false. If ctx ends while the bot is typing, the user
// message stays and no reply is posted.
func (s *Simulator) Send(ctx context.Context, text string) (reply Message, ok bool, err error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, false, nil
	}
	s.add(User, text)

	s.setTyping(true)
	defer s.setTyping(false)
	if err := s.delay(ctx, s.TypingDelay()); err != nil {
		return Message{}, false, err
	}
	return s.add(Bot, Replies[s.rnd.IntN(len(Replies))]), true, nil
}

func (s *Simulator) setTyping(v bool) {
	s.mu.Lock()
	s.typing = v
	s.mu.Unlock()
}

// Typing reports whether a reply is pending.
func (s *Simulator) Typing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typing
}

func (s *Simulator) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}
