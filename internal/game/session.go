package game

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pathofheroes/internal/entity"
	"github.com/samdwyer/pathofheroes/internal/gamedata"
	"github.com/samdwyer/pathofheroes/internal/locale"
	"github.com/samdwyer/pathofheroes/internal/progress"
	"github.com/samdwyer/pathofheroes/internal/telemetry"
)

// Run lifecycle errors.
var (
	ErrRunOver          = errors.New("run is over")
	ErrBattleInProgress = errors.New("battle still in progress")
	ErrNoBattle         = errors.New("no battle to conclude")
	ErrRewardPending    = errors.New("choose a reward first")
	ErrRewardNotOffered = errors.New("reward not offered")
	ErrUnknownReward    = errors.New("unknown reward")
)

// Session owns everything one player needs: static tables, tuning, the
// player save, display strings and the random source. Sessions share no
// state, so several may run concurrently.
type Session struct {
	Tables  *gamedata.Tables
	Tuning  gamedata.Tuning
	Save    *progress.PlayerSave
	Catalog *locale.Catalog

	rng Rand
	run *Run
}

// NewSession creates a session. A nil save starts a fresh one, and a nil
// catalog uses English.
func NewSession(tables *gamedata.Tables, tuning gamedata.Tuning, save *progress.PlayerSave, catalog *locale.Catalog, rng Rand) (*Session, error) {
	if save == nil {
		save = progress.NewPlayerSave(tables.Classes, tuning.Progression.BaseXPToLevel)
	}
	if catalog == nil {
		var err error
		if catalog, err = locale.Load(gamedata.DefaultLang); err != nil {
			return nil, err
		}
	}
	return &Session{Tables: tables, Tuning: tuning, Save: save, Catalog: catalog, rng: rng}, nil
}

// Run returns the active run, or nil between runs.
func (s *Session) Run() *Run { return s.run }

// StartRun begins a new run with classID at floor 1, replacing any active run.
// A failed start leaves the active run untouched.
// The hero is built from the class's persistent progress.
func (s *Session) StartRun(ctx context.Context, classID string) (*Run, error) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "run.start")
	defer span.End()

	if _, err := s.Tables.Classes.Get(classID); err != nil {
		span.RecordError(err)
		return nil, err
	}
	prog := s.Save.Hero(classID, s.Tuning.Progression.BaseXPToLevel)
	hero, err := entity.NewHero(s.Tables, classID, prog.Level)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if s.run != nil {
		s.run.finish()
	}

	r := &Run{
		ID:       uuid.New(),
		ClassID:  classID,
		Floor:    1,
		Hero:     hero,
		Progress: prog,
		session:  s,
	}
	s.run = r

	span.SetAttributes(
		attribute.String("run.id", r.ID.String()),
		attribute.String("hero", classID),
		attribute.Int("hero.level", prog.Level),
	)
	return r, nil
}

// Run is the state of one descent: the current floor, the hero entity that
// lives for the whole run, and the active encounter.
type Run struct {
	ID       uuid.UUID
	ClassID  string
	Floor    int
	Hero     *entity.Hero
	Progress *progress.HeroProgress // Persistent record the hero was built from
	Battle   *Battle                // Active or just-ended encounter
	Offer    []RewardKind           // Pending reward choices after a victory

	over    bool
	session *Session
}

// Over reports whether the run ended by defeat or flight.
func (r *Run) Over() bool { return r.over }

// NextBattle spawns the foe for the current floor and starts an encounter.
// Boss floors draw from the boss table.
func (r *Run) NextBattle(ctx context.Context) (*Battle, error) {
	switch {
	case r.over:
		return nil, ErrRunOver
	case r.Battle != nil && !r.Battle.Ended():
		return nil, ErrBattleInProgress
	case r.Battle != nil:
		return nil, fmt.Errorf("conclude the previous battle: %w", ErrBattleInProgress)
	case len(r.Offer) > 0:
		return nil, ErrRewardPending
	}

	s := r.session
	def, err := s.Tables.Foes.SpawnForFloor(r.Floor, s.Tuning.Progression.BossFloorInterval, s.rng)
	if err != nil {
		return nil, err
	}
	foe := entity.NewFoe(def, r.Floor, s.Tuning.Progression)
	r.Battle = NewBattle(r.Hero, foe, s.Tuning.Combat, s.rng, s.Catalog)

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "battle.start")
	span.SetAttributes(
		attribute.String("run.id", r.ID.String()),
		attribute.Int("floor", r.Floor),
		attribute.String("foe", def.ID),
		attribute.Bool("boss", def.Boss),
		attribute.Float64("scale", foe.Scale),
	)
	span.End()

	return r.Battle, nil
}

// Settlement is the end-of-encounter report handed to the presentation layer.
type Settlement struct {
	Outcome      Outcome
	Floor        int // Floor the battle was fought on
	NextFloor    int // Floor of the next battle; 0 when the run is over
	XPGained     int
	GoldGained   int
	GoldLost     int
	LevelsGained int
	Progress     progress.HeroProgress // Copy of the hero progress after the battle
	Gold         int                   // Player gold after the battle
	Rewards      []RewardKind          // Offered rewards after a victory
}

// Conclude applies the consequences of the ended battle.
//
// Victory advances the floor, grants the foe's fixed xp and gold, levels the
// hero's persistent progress and offers rewards. Defeat costs a share of the
// gold and ends the run. Fleeing ends the run with no gain or loss.
func (r *Run) Conclude(ctx context.Context) (Settlement, error) {
	if r.Battle == nil {
		return Settlement{}, ErrNoBattle
	}
	if !r.Battle.Ended() {
		return Settlement{}, ErrBattleInProgress
	}

	s := r.session
	b := r.Battle
	st := Settlement{Outcome: b.Outcome, Floor: r.Floor}

	switch b.Outcome {
	case OutcomeVictory:
		r.Floor++
		st.XPGained = b.Foe.Def.XPReward
		st.GoldGained = b.Foe.Def.GoldReward
		s.Save.AddGold(st.GoldGained)
		st.LevelsGained = r.Progress.GainXP(st.XPGained, s.Tuning.Progression.XPGrowthMultiplier)
		r.Offer = OfferRewards(s.rng)
		st.Rewards = slices.Clone(r.Offer)
		st.NextFloor = r.Floor
	case OutcomeDefeat:
		st.GoldLost = s.Save.ApplyDeathPenalty(s.Tuning.Progression.GoldLossOnDeathPercent)
		r.finish()
	case OutcomeFled:
		r.finish()
	}
	st.Progress = *r.Progress
	st.Gold = s.Save.Gold
	r.Battle = nil

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "battle.end")
	span.SetAttributes(
		attribute.String("run.id", r.ID.String()),
		attribute.String("outcome", st.Outcome.String()),
		attribute.Int("floor", st.Floor),
		attribute.Int("turns_taken", b.TurnCount),
		attribute.Int("hero_hp_remaining", r.Hero.HP),
		attribute.Int("xp_gained", st.XPGained),
		attribute.Int("gold_gained", st.GoldGained),
		attribute.Int("gold_lost", st.GoldLost),
		attribute.Int("levels_gained", st.LevelsGained),
	)
	span.End()

	return st, nil
}

// finish marks the run over and clears it from the session.
func (r *Run) finish() {
	r.over = true
	r.Offer = nil
	if r.session.run == r {
		r.session.run = nil
	}
}

// ChooseReward applies one of the offered rewards to the run's hero and
// clears the offer so the next battle can start.
func (r *Run) ChooseReward(ctx context.Context, kind RewardKind) error {
	if r.over {
		return ErrRunOver
	}
	if !slices.Contains(r.Offer, kind) {
		return fmt.Errorf("%s: %w", kind, ErrRewardNotOffered)
	}
	if err := ApplyReward(r.Hero, kind, r.session.Tables.Items); err != nil {
		return err
	}
	r.Offer = nil

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "run.reward")
	span.SetAttributes(
		attribute.String("run.id", r.ID.String()),
		attribute.String("reward", kind.String()),
		attribute.Int("floor", r.Floor),
	)
	span.End()
	return nil
}
