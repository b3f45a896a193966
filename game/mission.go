package game

import (
	"fmt"

	"war/dice"
	"war/meta"
)

// MissionKind is the win condition assigned to a session.
type MissionKind int

const (
	ConquerCount    MissionKind = iota // Reach a total number of conquests
	ConquerSequence                    // Reach a streak of conquests without a repelled attack
)

func (k MissionKind) String() string {
	switch k {
	case ConquerCount:
		return "Conquer a specific number of territories."
	case ConquerSequence:
		return "Conquer territories in sequence."
	default:
		return fmt.Sprintf("MissionKind(%d)", int(k))
	}
}

// Mission tracks progress toward the session's win condition.
type Mission struct {
	Kind             MissionKind
	ConquerCount     int // Successful attacks so far, never decreases
	ConquerSequence  int // Successful attacks since the last repelled one
	RequiredCount    int
	RequiredSequence int
}

// NewMission draws the mission kind and both thresholds for a board of
// territoryCount territories. Both thresholds are drawn whatever the kind.
func NewMission(src dice.Source, territoryCount int) *Mission {
	kind := MissionKind(dice.Between(src, int(ConquerCount), int(ConquerSequence)))
	return &Mission{
		Kind:             kind,
		RequiredCount:    dice.Between(src, meta.MIN_REQUIRED_COUNT, territoryCount/2),
		RequiredSequence: dice.Between(src, meta.MIN_REQUIRED_SEQUENCE, territoryCount/3),
	}
}

// RecordConquest counts a won attack.
func (m *Mission) RecordConquest() {
	m.ConquerCount++
	m.ConquerSequence++
}

// RecordRepelled breaks the current streak.
func (m *Mission) RecordRepelled() {
	m.ConquerSequence = 0
}

// Status describes progress toward the active mission.
func (m *Mission) Status() string {
	switch m.Kind {
	case ConquerCount:
		return fmt.Sprintf("Conquered %d out of %d required territories.", m.ConquerCount, m.RequiredCount)
	case ConquerSequence:
		return fmt.Sprintf("Current conquer sequence: %d out of %d required.", m.ConquerSequence, m.RequiredSequence)
	default:
		return ""
	}
}

// IsComplete reports whether the active counter reached its threshold.
func (m *Mission) IsComplete() bool {
	switch m.Kind {
	case ConquerCount:
		return m.ConquerCount >= m.RequiredCount
	case ConquerSequence:
		return m.ConquerSequence >= m.RequiredSequence
	default:
		return false
	}
}
