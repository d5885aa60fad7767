package ui

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pathofheroes/internal/game"
	"github.com/samdwyer/pathofheroes/internal/gamedata"
	"github.com/samdwyer/pathofheroes/internal/telemetry"
)

// Scene is the screen the app is showing.
type Scene int

const (
	SceneMenu Scene = iota
	SceneClassSelect
	SceneBattle
	SceneReward
	SceneResult
)

// String returns a human-readable scene name.
func (s Scene) String() string {
	switch s {
	case SceneMenu:
		return "menu"
	case SceneClassSelect:
		return "class_select"
	case SceneBattle:
		return "battle"
	case SceneReward:
		return "reward"
	case SceneResult:
		return "result"
	default:
		return "unknown"
	}
}

// App runs one session in the terminal.
type App struct {
	screen   *Screen
	renderer *Renderer
	session  *game.Session
	pacing   time.Duration

	scene      Scene
	cursor     int
	notice     string // Rejection text shown under the battle log
	settlement game.Settlement
	running    bool
}

// New opens the terminal and creates an app for session.
func New(session *game.Session, cfg game.Config) (*App, error) {
	screen, err := NewScreen()
	if err != nil {
		return nil, err
	}
	return newApp(screen, session, cfg), nil
}

func newApp(screen *Screen, session *game.Session, cfg game.Config) *App {
	return &App{
		screen:   screen,
		renderer: NewRenderer(screen, session.Catalog),
		session:  session,
		pacing:   cfg.Pacing,
		scene:    SceneMenu,
		running:  true,
	}
}

// Scene returns the current scene.
func (a *App) Scene() Scene { return a.scene }

// Run executes the main loop until the player quits.
func (a *App) Run(ctx context.Context) error {
	defer a.screen.Close()

	for a.running {
		a.render()
		if err := a.handleEvent(ctx, a.screen.PollEvent()); err != nil {
			return err
		}
	}
	return nil
}

// Close restores the terminal.
func (a *App) Close() {
	if a.screen != nil {
		a.screen.Close()
	}
}

func (a *App) render() {
	switch a.scene {
	case SceneMenu:
		a.renderer.RenderMenu()
	case SceneClassSelect:
		a.renderer.RenderClassSelect(a.session.Tables.Classes.All(), a.cursor, a.saveView())
	case SceneBattle:
		run := a.session.Run()
		a.renderer.RenderBattle(run.Battle.Snapshot(), run.Floor, run.Hero.Def, a.notice)
	case SceneReward:
		a.renderer.RenderReward(a.settlement, a.cursor)
	case SceneResult:
		a.renderer.RenderResult(a.settlement)
	}
}

func (a *App) saveView() SaveView {
	save := a.session.Save
	v := SaveView{Gold: save.Gold, Levels: make(map[string]int)}
	for _, id := range a.session.Tables.Classes.IDs() {
		v.Levels[id] = save.Hero(id, a.session.Tuning.Progression.BaseXPToLevel).Level
	}
	return v
}

// handleEvent processes a single terminal event.
func (a *App) handleEvent(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
	case nil:
		// Screen finalized.
		a.running = false
	}
	return nil
}

// handleKey dispatches a key press to the current scene.
func (a *App) handleKey(ctx context.Context, key tcell.Key, ch rune) error {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC || (key == tcell.KeyRune && (ch == 'q' || ch == 'Q')) {
		a.running = false
		return nil
	}

	switch a.scene {
	case SceneMenu:
		if key == tcell.KeyEnter {
			a.scene, a.cursor = SceneClassSelect, 0
		}
	case SceneClassSelect:
		return a.handleClassSelect(ctx, key)
	case SceneBattle:
		if key == tcell.KeyRune {
			if action, ok := intentKeys[ch]; ok {
				return a.act(ctx, action)
			}
		}
	case SceneReward:
		return a.handleReward(ctx, key, ch)
	case SceneResult:
		if key == tcell.KeyEnter {
			a.scene, a.cursor = afterResult(a.settlement.Outcome), 0
		}
	}
	return nil
}

// afterResult picks the scene that follows the end of a run. A hero who fled
// goes straight back to hero selection; a fallen one returns to the title.
func afterResult(outcome game.Outcome) Scene {
	if outcome == game.OutcomeFled {
		return SceneClassSelect
	}
	return SceneMenu
}

// intentKeys maps battle keys to player intents.
var intentKeys = map[rune]game.Action{
	'a': game.ActionAttack, 'A': game.ActionAttack,
	'd': game.ActionDefend, 'D': game.ActionDefend,
	's': game.ActionSkill, 'S': game.ActionSkill,
	'f': game.ActionFlee, 'F': game.ActionFlee,
	'i': game.ActionItem, 'I': game.ActionItem,
}

func (a *App) handleClassSelect(ctx context.Context, key tcell.Key) error {
	ids := a.session.Tables.Classes.IDs()
	switch key {
	case tcell.KeyUp:
		a.cursor = (a.cursor + len(ids) - 1) % len(ids)
	case tcell.KeyDown:
		a.cursor = (a.cursor + 1) % len(ids)
	case tcell.KeyEnter:
		run, err := a.session.StartRun(ctx, ids[a.cursor])
		if err != nil {
			return err
		}
		return a.startBattle(ctx, run)
	}
	return nil
}

func (a *App) startBattle(ctx context.Context, run *game.Run) error {
	if _, err := run.NextBattle(ctx); err != nil {
		return err
	}
	a.scene, a.cursor, a.notice = SceneBattle, 0, ""
	return nil
}

// act resolves one player intent and, when it passes the turn, the foe's
// reply after the pacing delay.
func (a *App) act(ctx context.Context, action game.Action) error {
	run := a.session.Run()
	b := run.Battle

	_, err := b.Act(ctx, action)
	if err != nil {
		a.notice = b.RejectionMessage(err)
		return nil
	}
	a.notice = ""

	if b.Phase == game.PhaseEnemyTurn {
		a.render()
		if err := a.pause(ctx); err != nil {
			return err
		}
		if _, err := b.EnemyTurn(ctx); err != nil {
			return err
		}
	}
	if b.Ended() {
		return a.conclude(ctx, run)
	}
	return nil
}

func (a *App) pause(ctx context.Context) error {
	if a.pacing <= 0 {
		return nil
	}
	t := time.NewTimer(a.pacing)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (a *App) conclude(ctx context.Context, run *game.Run) error {
	if a.pacing > 0 {
		a.render()
		if err := a.pause(ctx); err != nil {
			return err
		}
	}
	st, err := run.Conclude(ctx)
	if err != nil {
		return err
	}
	a.settlement, a.cursor = st, 0
	if st.Outcome == game.OutcomeVictory {
		a.scene = SceneReward
	} else {
		a.scene = SceneResult
	}
	return nil
}

func (a *App) handleReward(ctx context.Context, key tcell.Key, ch rune) error {
	offer := a.settlement.Rewards
	switch {
	case key == tcell.KeyUp:
		a.cursor = (a.cursor + len(offer) - 1) % len(offer)
		return nil
	case key == tcell.KeyDown:
		a.cursor = (a.cursor + 1) % len(offer)
		return nil
	case key == tcell.KeyRune && ch >= '1' && int(ch-'1') < len(offer):
		a.cursor = int(ch - '1')
	case key != tcell.KeyEnter:
		return nil
	}

	run := a.session.Run()
	kind := offer[a.cursor]
	if err := run.ChooseReward(ctx, kind); err != nil {
		if errors.Is(err, game.ErrRewardNotOffered) {
			return nil
		}
		return err
	}

	_, span := telemetry.Tracer("ui").Start(ctx, "ui.reward")
	span.SetAttributes(
		attribute.String("reward", kind.String()),
		attribute.Int("hero_hp", run.Hero.HP),
		attribute.Bool("boss_next", gamedata.IsBossFloor(run.Floor, a.session.Tuning.Progression.BossFloorInterval)),
	)
	span.End()

	return a.startBattle(ctx, run)
}
