package engine

import (
	"fmt"

	"github.com/tatianab/deadly-dice/internal/models"
	"go.uber.org/zap"
)

// Engine owns a single Session and resolves every state transition on it.
// It is not safe for concurrent use.
type Engine struct {
	src     Source
	logger  *zap.Logger
	strict  bool
	held    bool
	session models.Session
}

type Option func(*Engine)

// WithLogger routes engine diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithStrict makes RollDice panic when called before StartSession.
func WithStrict(strict bool) Option {
	return func(e *Engine) { e.strict = strict }
}

func NewEngine(src Source, opts ...Option) *Engine {
	e := &Engine{
		src:    src,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Turn describes what a single accepted roll did.
type Turn struct {
	Roll       int
	Position   int
	Event      models.CellEvent
	Monster    *models.Monster
	Treasure   *models.TreasureArchetype
	ExtraSteps int
	Status     models.Status
	// Log holds the lines this roll appended to the session log.
	Log []string
}

// StartSession discards any previous session and begins a new one.
func (e *Engine) StartSession() {
	length := between(e.src, MinBoardLength, MaxBoardLength)
	e.session = models.Session{
		BoardLength: length,
		Player:      models.NewPlayer(),
		Status:      models.InProgress,
		Log:         []string{fmt.Sprintf("Game started! Track length: %d cells", length)},
	}
	e.held = false
	e.logger.Info("session started", zap.Int("board_length", length))
}

// CanRoll reports whether RollDice would be accepted right now.
func (e *Engine) CanRoll() bool {
	return e.session.Status == models.InProgress && !e.held
}

// Hold blocks rolls while the presentation layer reveals the previous one.
func (e *Engine) Hold() { e.held = true }

// Release lifts a Hold.
func (e *Engine) Release() { e.held = false }

// Held reports whether a presentation hold is active.
func (e *Engine) Held() bool { return e.held }

// RollDice resolves one full turn. It returns false and leaves the session
// untouched when a roll cannot be accepted.
func (e *Engine) RollDice() (Turn, bool) {
	if e.session.Status == models.NotStarted && e.strict {
		panic("engine: RollDice called before StartSession")
	}
	if !e.CanRoll() {
		e.logger.Debug("roll rejected",
			zap.Stringer("status", e.session.Status),
			zap.Bool("held", e.held))
		return Turn{}, false
	}

	mark := len(e.session.Log)
	s := &e.session

	s.DiceRollCount++
	steps := between(e.src, 1, dieFaces)
	s.Position = min(s.Position+steps, s.BoardLength)
	e.logf("Rolled %d, moved to cell %d", steps, s.Position)

	turn := Turn{Roll: steps}
	if s.Position == s.BoardLength {
		s.Status = models.Won
	} else {
		turn.Event = drawCellEvent(e.src)
		switch turn.Event {
		case models.Danger:
			m := spawn(e.src, drawMonsterArchetype(e.src))
			turn.Monster = &m
			if !e.fight(m) {
				s.Status = models.Lost
			}
		case models.Treasure:
			t := drawTreasure(e.src)
			turn.Treasure = &t
			turn.ExtraSteps = e.applyTreasure(t)
		}
	}

	turn.Position = s.Position
	turn.Status = s.Status
	turn.Log = append([]string(nil), s.Log[mark:]...)

	e.logger.Info("turn resolved",
		zap.Int("roll_count", s.DiceRollCount),
		zap.Int("roll", steps),
		zap.Int("position", s.Position),
		zap.Stringer("event", turn.Event),
		zap.Stringer("status", s.Status))
	return turn, true
}

// Snapshot returns a copy of the session safe to hold across later rolls.
func (e *Engine) Snapshot() models.Session {
	s := e.session
	s.Log = append([]string(nil), e.session.Log...)
	return s
}

func (e *Engine) logf(format string, args ...any) {
	e.session.Log = append(e.session.Log, fmt.Sprintf(format, args...))
}
