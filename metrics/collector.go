package metrics

import (
	"fmt"
	"time"
)

// SessionMetric summarizes one played session.
type SessionMetric struct {
	Seed            uint64
	Territories     int
	Turns           int
	Attacks         int // Resolved attacks
	Conquests       int
	Repelled        int
	Rejected        int // Illegal attacks and invalid input
	LongestSequence int
	Completed       bool
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
}

func (m SessionMetric) String() string {
	return fmt.Sprintf("%d turns, %d attacks (%d conquered, %d repelled), %d rejected, longest sequence %d",
		m.Turns, m.Attacks, m.Conquests, m.Repelled, m.Rejected, m.LongestSequence)
}

type Collector interface {
	Start(seed uint64, territories int)
	AddTurn()
	AddConquest()
	AddRepelled()
	AddRejected()
	SetCompleted(value bool)
	Complete() SessionMetric
}

type collector struct {
	seed        uint64
	territories int
	startTime   time.Time
	turns       int
	conquests   int
	repelled    int
	rejected    int
	sequence    int
	longest     int
	completed   bool
	now         func() time.Time
}

func NewCollector() Collector {
	return &collector{now: time.Now}
}

func (m *collector) Start(seed uint64, territories int) {
	m.startTime = m.now()
	m.seed = seed
	m.territories = territories
}

func (m *collector) AddTurn() {
	m.turns++
}

func (m *collector) AddConquest() {
	m.conquests++
	m.sequence++
	m.longest = max(m.longest, m.sequence)
}

func (m *collector) AddRepelled() {
	m.repelled++
	m.sequence = 0
}

func (m *collector) AddRejected() {
	m.rejected++
}

func (m *collector) SetCompleted(value bool) {
	m.completed = value
}

func (m *collector) Complete() SessionMetric {
	end := m.now()
	return SessionMetric{
		Seed:            m.seed,
		Territories:     m.territories,
		Turns:           m.turns,
		Attacks:         m.conquests + m.repelled,
		Conquests:       m.conquests,
		Repelled:        m.repelled,
		Rejected:        m.rejected,
		LongestSequence: m.longest,
		Completed:       m.completed,
		StartTime:       m.startTime,
		EndTime:         end,
		Duration:        end.Sub(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(seed uint64, territories int) {}
func (m *dummyCollector) AddTurn()                           {}
func (m *dummyCollector) AddConquest()                       {}
func (m *dummyCollector) AddRepelled()                       {}
func (m *dummyCollector) AddRejected()                       {}
func (m *dummyCollector) SetCompleted(value bool)            {}
func (m *dummyCollector) Complete() SessionMetric            { return SessionMetric{} }
