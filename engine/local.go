package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog/log"

	"war/game"
	"war/meta"
	"war/metrics"
)

type Engine struct {
	State     *game.GameState
	Collector metrics.Collector
	in        *bufio.Scanner
	out       io.Writer
	errOut    io.Writer
	status    Status
	eof       bool
}

// LocalEngine wires a session to text streams. Commands are read as
// whitespace separated integers.
func LocalEngine(state *game.GameState, in io.Reader, out, errOut io.Writer, collector metrics.Collector) *Engine {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Engine{
		State:     state,
		Collector: collector,
		in:        scanner,
		out:       out,
		errOut:    errOut,
		status:    Running,
	}
}

// Run executes the session loop until the mission is completed or the
// player exits.
func (e *Engine) Run() Status {
	gs := e.State

	log.Info().Msgf("player %s is starting with %d territories, mission: %s", gs.Color(gs.Player), len(gs.Territories), gs.Mission.Kind)

	fmt.Fprintln(e.out, "Welcome to War!")
	fmt.Fprintf(e.out, "Your mission: %s\n", gs.Mission.Kind)

	for e.status == Running {
		e.Collector.AddTurn()
		e.render()

		fmt.Fprintln(e.out, "Choose an operation:\n\t1. Attack\n\t2. Verify missions\n\t0. Exit")
		fmt.Fprint(e.out, ">")
		op, err := e.readInt()
		if err != nil {
			op = -1
			e.reject(err, "")
		}

		switch op {
		case AttackOp:
			e.attack()
		case VerifyOp:
			e.verify()
		}

		if gs.Mission.IsComplete() {
			fmt.Fprintln(e.out, "Congratulations! You have completed your mission!")
			e.status = Completed
		} else if op == ExitOp || e.eof {
			e.status = ExitedByUser
		}
	}

	e.Collector.SetCompleted(e.status == Completed)
	summary := e.Collector.Complete()
	log.Info().Msgf("session %s: %s", e.status, summary)
	fmt.Fprintf(e.out, "Session %s: %s\n", e.status, summary)

	return e.status
}

func (e *Engine) render() {
	gs := e.State

	fmt.Fprintf(e.out, "Your team color is %s\n", gs.Color(gs.Player))
	fmt.Fprintln(e.out, "Territories:")
	fmt.Fprintf(e.out, "%*s %s %s %*s\n",
		meta.INDEX_WIDTH, "#",
		runewidth.FillRight("Name", meta.NAME_WIDTH),
		runewidth.FillRight("Color", meta.COLOR_WIDTH),
		meta.ARMIES_WIDTH, "Armies")
	for id, t := range gs.Territories {
		fmt.Fprintf(e.out, "%*d %s %s %*d\n",
			meta.INDEX_WIDTH, id,
			runewidth.FillRight(t.Name, meta.NAME_WIDTH),
			runewidth.FillRight(gs.Color(t.Owner), meta.COLOR_WIDTH),
			meta.ARMIES_WIDTH, t.Armies)
	}
}

// attack reads the attacker then the defender index and resolves the attack.
// The attacker is validated before the defender is asked for.
func (e *Engine) attack() {
	gs := e.State

	fmt.Fprintln(e.out, "Enter your territory index to attack from:")
	from, err := e.readInt()
	if err == nil && !gs.Valid(from) {
		err = fmt.Errorf("%w: %d", ErrInvalidIndex, from)
	}
	if err == nil && !gs.Owns(from) {
		err = fmt.Errorf("%w: %d", ErrNotYourTerritory, from)
	}
	if err != nil {
		e.reject(err, "")
		return
	}

	fmt.Fprintln(e.out, "Enter territory index to attack:")
	to, err := e.readInt()
	if err == nil && !gs.Valid(to) {
		err = fmt.Errorf("%w: %d", ErrInvalidIndex, to)
	}
	if err != nil {
		e.reject(err, "")
		return
	}

	outcome, err := gs.Attack(from, to)
	if err != nil {
		e.reject(err, gs.Territories[from].Name)
		return
	}
	e.narrate(outcome)
}

func (e *Engine) narrate(o game.Outcome) {
	attacker := e.State.Territories[o.AttackerID].Name
	defender := e.State.Territories[o.DefenderID].Name

	fmt.Fprintf(e.out, "%s rolls a %d\n", attacker, o.AttackerRoll)
	fmt.Fprintf(e.out, "%s rolls a %d\n", defender, o.DefenderRoll)

	if o.Conquered {
		fmt.Fprintf(e.out, "%s wins the attack against %s!\n", attacker, defender)
		e.Collector.AddConquest()
	} else {
		fmt.Fprintf(e.out, "%s defends successfully against %s!\n", defender, attacker)
		e.Collector.AddRepelled()
	}

	log.Debug().
		Int("attacker", o.AttackerID).
		Int("defender", o.DefenderID).
		Int("attacker_roll", o.AttackerRoll).
		Int("defender_roll", o.DefenderRoll).
		Bool("conquered", o.Conquered).
		Int("moved", o.Moved).
		Msg("attack resolved")
}

func (e *Engine) verify() {
	fmt.Fprintln(e.out, e.State.Mission.Status())
}

// reject reports a turn-local error to the player. EOF is not reported and a
// failed read is reported once; both end the session once the current turn
// is over, since the scanner never yields input again.
func (e *Engine) reject(err error, attacker string) {
	if errors.Is(err, io.EOF) {
		e.eof = true
		return
	}
	if errors.Is(err, ErrReadFailed) {
		e.eof = true
		log.Error().Err(err).Msg("input closed")
		fmt.Fprintln(e.errOut, describe(err, attacker))
		return
	}
	log.Debug().Err(err).Msg("turn rejected")
	e.Collector.AddRejected()
	fmt.Fprintln(e.errOut, describe(err, attacker))
}

func (e *Engine) readInt() (int, error) {
	if !e.in.Scan() {
		if err := e.in.Err(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrReadFailed, err)
		}
		return 0, io.EOF
	}
	v, err := strconv.Atoi(e.in.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, e.in.Text())
	}
	return v, nil
}

// describe turns an error into the message shown to the player.
func describe(err error, attacker string) string {
	switch {
	case errors.Is(err, ErrReadFailed):
		return fmt.Sprintf("Failed to read input: %v", err)
	case errors.Is(err, ErrNotANumber):
		return "Invalid input."
	case errors.Is(err, ErrInvalidIndex):
		return "Invalid territory index."
	case errors.Is(err, ErrNotYourTerritory):
		return "You can only attack from your own territories."
	case errors.Is(err, game.ErrUnknownTerritory):
		return "Invalid territories for attack."
	case errors.Is(err, game.ErrSameTerritory):
		return "Cannot attack the same territory."
	case errors.Is(err, game.ErrOwnTerritory):
		return "Cannot attack conquered territories."
	case errors.Is(err, game.ErrNotEnoughArmies):
		return fmt.Sprintf("%s must have more than 1 army to attack.", attacker)
	default:
		return err.Error()
	}
}
