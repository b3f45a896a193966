package game

import (
	"errors"
	"fmt"

	"war/dice"
	"war/meta"
	"war/utils"
)

var (
	ErrUnknownTerritory = errors.New("cannot attack: unknown territory")
	ErrSameTerritory    = errors.New("cannot attack: attacker and defender are the same territory")
	ErrOwnTerritory     = errors.New("cannot attack: target territory is owned by the same faction")
	ErrNotEnoughArmies  = errors.New("cannot attack: not enough armies to attack")
)

// GameState is the whole mutable state of one session.
type GameState struct {
	Catalog     *Catalog    // Pools the territories were drawn from
	Territories []Territory // Indexed by territory ID, fixed length
	Player      Faction     // Owner of territory 0 at creation
	Mission     *Mission
	src         dice.Source
}

// Outcome describes a resolved attack.
type Outcome struct {
	AttackerID   int
	DefenderID   int
	AttackerRoll int
	DefenderRoll int
	Conquered    bool // Defender changed hands
	Moved        int  // Armies moved into the conquered territory
}

// NewGameState generates a board and draws a mission. A count of zero or
// less draws the count in [MIN_TERRITORIES, catalog size].
func NewGameState(c *Catalog, src dice.Source, count int) (*GameState, error) {
	if count <= 0 {
		count = dice.Between(src, meta.MIN_TERRITORIES, c.Size())
	}
	territories, err := Generate(c, src, count)
	if err != nil {
		return nil, err
	}
	return &GameState{
		Catalog:     c,
		Territories: territories,
		Player:      territories[0].Owner,
		Mission:     NewMission(src, count),
		src:         src,
	}, nil
}

// Valid reports whether id names a territory of the board.
func (gs *GameState) Valid(id int) bool {
	return id >= 0 && id < len(gs.Territories)
}

// Owns reports whether the player's faction holds territory id.
func (gs *GameState) Owns(id int) bool {
	return gs.Valid(id) && gs.Territories[id].Owner == gs.Player
}

// Color returns the display name of a faction.
func (gs *GameState) Color(f Faction) string {
	return gs.Catalog.Color(f)
}

// Holdings counts the territories currently held by faction f.
func (gs *GameState) Holdings(f Faction) int {
	return utils.Count(gs.Territories, func(t Territory) bool { return t.Owner == f })
}

// Attack resolves one attack of attackerID against defenderID. Rejected
// attacks leave the board and the mission untouched.
func (gs *GameState) Attack(attackerID, defenderID int) (Outcome, error) {
	if !gs.Valid(attackerID) || !gs.Valid(defenderID) {
		return Outcome{}, ErrUnknownTerritory
	}
	if attackerID == defenderID {
		return Outcome{}, ErrSameTerritory
	}
	attacker := &gs.Territories[attackerID]
	defender := &gs.Territories[defenderID]
	if attacker.Owner == defender.Owner {
		return Outcome{}, ErrOwnTerritory
	}
	if attacker.Armies <= 1 {
		return Outcome{}, fmt.Errorf("%w: %s has %d", ErrNotEnoughArmies, attacker.Name, attacker.Armies)
	}

	outcome := Outcome{
		AttackerID:   attackerID,
		DefenderID:   defenderID,
		AttackerRoll: dice.Roll(gs.src, meta.DICE_SIDES),
		DefenderRoll: dice.Roll(gs.src, meta.DICE_SIDES),
	}

	// Ties go to the attacker
	if outcome.AttackerRoll >= outcome.DefenderRoll {
		moved := utils.AtLeast(attacker.Armies/2, 1)
		defender.Owner = attacker.Owner
		defender.Armies = moved
		// ceil(Armies/2) since Armies > 1
		attacker.Armies = utils.AtLeast(attacker.Armies-moved, 1)

		outcome.Conquered = true
		outcome.Moved = moved
		gs.Mission.RecordConquest()
	} else {
		attacker.Armies = utils.AtLeast(attacker.Armies-1, 0)
		gs.Mission.RecordRepelled()
	}

	return outcome, nil
}

// Restore builds a state around an existing board. The player is the owner
// of territory 0.
func Restore(c *Catalog, territories []Territory, mission *Mission, src dice.Source) *GameState {
	gs := &GameState{
		Catalog:     c,
		Territories: territories,
		Mission:     mission,
		src:         src,
	}
	if len(territories) > 0 {
		gs.Player = territories[0].Owner
	}
	return gs
}
