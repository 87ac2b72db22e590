// Package assistant implements the dashboard's small Q&A helper: keyword
// matching over precomputed analytics summaries, no inference. State is an
// explicit session struct with ordered message history and a TTL cache;
// the clock is injected so expiry is testable.
package assistant

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stc-cow/cowtrack-backend-go/internal/models"
)

// DataSource provides the analytics summaries answers are built from.
// *service.AnalyticsService satisfies it.
type DataSource interface {
	GetFleetOverview() (models.FleetOverview, error)
	GetAgingReport() (models.AgingReport, error)
	GetDwellSummary() (models.DwellSummary, error)
}

// Clock returns the current time; swap in a fake for TTL tests.
type Clock func() time.Time

// Message is one turn of a session transcript.
type Message struct {
	Role string    `json:"role"` // "user" or "assistant"
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

type cacheEntry struct {
	value  string
	expiry time.Time
}

// Session holds one conversation: ordered history plus a per-topic answer
// cache so repeated questions do not recompute the batch.
type Session struct {
	ID       string
	messages []Message
	cache    map[string]cacheEntry
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Manager owns the live sessions.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	data     DataSource
	ttl      time.Duration
	clock    Clock
}

// NewManager creates a session manager. A nil clock means time.Now.
func NewManager(data DataSource, ttl time.Duration, clock Clock) *Manager {
	if clock == nil {
		clock = time.Now
	}
	return &Manager{
		sessions: make(map[string]*Session),
		data:     data,
		ttl:      ttl,
		clock:    clock,
	}
}

// Ask routes a question to a topic answer, records both turns in the
// session, and returns the session ID with the answer. An empty session ID
// starts a new session.
func (m *Manager) Ask(sessionID, question string) (string, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[sessionID]
	if !ok {
		session = &Session{ID: uuid.NewString(), cache: make(map[string]cacheEntry)}
		m.sessions[session.ID] = session
	}

	now := m.clock()
	session.messages = append(session.messages, Message{Role: "user", Text: question, At: now})

	topic := classifyTopic(question)
	answer, err := m.answer(session, topic, now)
	if err != nil {
		return session.ID, "", err
	}
	session.messages = append(session.messages, Message{Role: "assistant", Text: answer, At: now})
	return session.ID, answer, nil
}

// Transcript returns the message history of a session, nil when unknown.
func (m *Manager) Transcript(sessionID string) []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	if session, ok := m.sessions[sessionID]; ok {
		return session.Messages()
	}
	return nil
}

func (m *Manager) answer(session *Session, topic string, now time.Time) (string, error) {
	if entry, ok := session.cache[topic]; ok && now.Before(entry.expiry) {
		return entry.value, nil
	}

	answer, err := m.buildAnswer(topic)
	if err != nil {
		return "", err
	}
	session.cache[topic] = cacheEntry{value: answer, expiry: now.Add(m.ttl)}
	return answer, nil
}

func (m *Manager) buildAnswer(topic string) (string, error) {
	switch topic {
	case "aging":
		report, err := m.data.GetAgingReport()
		if err != nil {
			return "", err
		}
		over12 := 0.0
		for _, b := range report.Buckets {
			if b.Name == ">12" {
				over12 = b.Value
			}
		}
		return fmt.Sprintf("%d COWs have accumulated warehouse idle time; %.0f of them have been off-air for more than 12 months.", len(report.COWValues), over12), nil
	case "dwell":
		summary, err := m.data.GetDwellSummary()
		if err != nil {
			return "", err
		}
		if len(summary.TopWarehouses) == 0 {
			return "No closed stays recorded yet.", nil
		}
		top := summary.TopWarehouses[0]
		return fmt.Sprintf("Across %d recorded stays, %s holds the most accumulated dwell time (%.1f days).", len(summary.Stays), top.Name, top.Value), nil
	default:
		overview, err := m.data.GetFleetOverview()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Tracking %d COWs across %d movements and %d locations; %d COWs are static.", overview.TotalCOWs, overview.TotalMovements, overview.TotalLocations, overview.StaticCOWs), nil
	}
}

// classifyTopic keyword-matches the question onto a known summary.
func classifyTopic(question string) string {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "idle"), strings.Contains(q, "aging"), strings.Contains(q, "off-air"), strings.Contains(q, "off air"):
		return "aging"
	case strings.Contains(q, "dwell"), strings.Contains(q, "stay"), strings.Contains(q, "warehouse"):
		return "dwell"
	default:
		return "overview"
	}
}
