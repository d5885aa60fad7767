package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pathofheroes/internal/game"
	"github.com/samdwyer/pathofheroes/internal/gamedata"
	"github.com/samdwyer/pathofheroes/internal/locale"
)

const barWidth = 20

var (
	titleStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	textStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	cursorStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	hpStyle      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	bossStyle    = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	warningStyle = tcell.StyleDefault.Foreground(tcell.ColorOrange)
)

// Renderer draws each scene of the game to the screen.
type Renderer struct {
	screen  *Screen
	catalog *locale.Catalog
	row     int
}

// NewRenderer creates a renderer that writes text from catalog.
func NewRenderer(screen *Screen, catalog *locale.Catalog) *Renderer {
	return &Renderer{screen: screen, catalog: catalog}
}

// begin clears the buffer and resets the cursor row.
func (r *Renderer) begin() {
	r.screen.Clear()
	r.row = 1
}

// line draws one line and moves down. Right-to-left catalogs align lines to
// the right edge.
func (r *Renderer) line(text string, style tcell.Style) {
	x := 2
	if r.catalog.RTL() {
		width, _ := r.screen.Size()
		x = max(0, width-2-utf8.RuneCountInString(text))
	}
	r.screen.DrawText(x, r.row, text, style)
	r.row++
}

func (r *Renderer) gap() { r.row++ }

// RenderMenu draws the title screen.
func (r *Renderer) RenderMenu() {
	r.begin()
	r.line(r.catalog.T(locale.GameTitle), titleStyle)
	r.gap()
	r.line("[Enter] "+r.catalog.T(locale.PlayButton), textStyle)
	r.line("[Q] quit", dimStyle)
	r.screen.Show()
}

// RenderClassSelect draws the hero list with the cursor on selected.
func (r *Renderer) RenderClassSelect(classes []gamedata.ClassDef, selected int, save SaveView) {
	r.begin()
	r.line(r.catalog.T(locale.CharSelectTitle), titleStyle)
	r.line(r.catalog.T(locale.Gold, save.Gold), dimStyle)
	r.gap()
	for i, def := range classes {
		text := fmt.Sprintf("%-10s %s  HP %d  ATK %d  DEF %d  %s",
			r.catalog.Name(def.Names), r.catalog.T(locale.Level, save.Levels[def.ID]),
			def.Base.HP, def.Base.Attack, def.Base.Defense, def.Skill.Name)
		style := textStyle
		if i == selected {
			style = cursorStyle
		}
		r.line(text, style)
	}
	r.gap()
	r.line("[Up/Down] [Enter] "+r.catalog.T(locale.StartGameButton), dimStyle)
	r.screen.Show()
}

// SaveView is the part of the player save shown on the hero list.
type SaveView struct {
	Gold   int
	Levels map[string]int
}

// RenderBattle draws the battle snapshot and the available intents.
func (r *Renderer) RenderBattle(snap game.Snapshot, floor int, class *gamedata.ClassDef, notice string) {
	r.begin()
	r.line(r.catalog.T(locale.GameTitle)+"   "+r.catalog.T(locale.Floor, floor), titleStyle)
	r.gap()

	hero := snap.Hero
	r.line(hero.Name, textStyle)
	r.line(bar("HP", hero.HP, hero.MaxHP), hpStyle)
	r.line(bar(hero.ResourceName, hero.Resource, hero.MaxResource), tcell.StyleDefault.Foreground(class.ResourceTCellColor()))
	r.gap()

	foe := snap.Foe
	foeStyle := textStyle
	if foe.Boss {
		foeStyle = bossStyle
	}
	r.line(foe.Name, foeStyle)
	r.line(bar("HP", foe.HP, foe.MaxHP), hpStyle)
	r.gap()

	r.line(snap.Message, textStyle)
	if notice != "" {
		r.line(notice, warningStyle)
	} else {
		r.gap()
	}
	r.gap()

	if snap.Phase == game.PhasePlayerTurn {
		skill := class.Skill
		r.line(fmt.Sprintf("[A] %s  [D] %s  [S] %s (%s, %d)  [I] %s (%d)  [F] %s",
			r.catalog.T(locale.AttackButton), r.catalog.T(locale.DefendButton),
			r.catalog.T(locale.SkillButton), skill.Name, skill.Cost,
			r.catalog.T(locale.ItemsButton), snap.Potions, r.catalog.T(locale.FleeButton)), dimStyle)
	}
	r.screen.Show()
}

// RenderReward draws the settlement of a won battle and the offered rewards.
func (r *Renderer) RenderReward(st game.Settlement, selected int) {
	r.begin()
	r.line(r.catalog.T(locale.FloorCleared), titleStyle)
	r.renderSettlement(st)
	r.gap()
	r.line(r.catalog.T(locale.RewardTitle), titleStyle)
	for i, kind := range st.Rewards {
		style := textStyle
		if i == selected {
			style = cursorStyle
		}
		r.line(fmt.Sprintf("[%d] %s", i+1, r.catalog.T(kind.Label())), style)
	}
	r.screen.Show()
}

// RenderResult draws the end of a run.
func (r *Renderer) RenderResult(st game.Settlement) {
	r.begin()
	switch st.Outcome {
	case game.OutcomeDefeat:
		r.line(r.catalog.T(locale.YouLose), warningStyle)
	case game.OutcomeFled:
		r.line(r.catalog.T(locale.Fled), textStyle)
	default:
		r.line(r.catalog.T(locale.YouWin), titleStyle)
	}
	r.renderSettlement(st)
	r.gap()
	r.line("[Enter]", dimStyle)
	r.screen.Show()
}

func (r *Renderer) renderSettlement(st game.Settlement) {
	r.line(r.catalog.T(locale.Floor, st.Floor), textStyle)
	if st.XPGained > 0 {
		r.line(fmt.Sprintf("+%d XP  (%d/%d)", st.XPGained, st.Progress.XP, st.Progress.XPToNextLevel), textStyle)
	}
	if st.LevelsGained > 0 {
		r.line(r.catalog.T(locale.LevelUp)+" "+r.catalog.T(locale.Level, st.Progress.Level), titleStyle)
	}
	gold := r.catalog.T(locale.Gold, st.Gold)
	switch {
	case st.GoldGained > 0:
		gold += fmt.Sprintf("  (+%d)", st.GoldGained)
	case st.GoldLost > 0:
		gold += fmt.Sprintf("  (-%d)", st.GoldLost)
	}
	r.line(gold, textStyle)
}

// bar renders "label cur/max [####....]".
func bar(label string, cur, maxValue int) string {
	filled := 0
	if maxValue > 0 {
		filled = cur * barWidth / maxValue
	}
	filled = max(0, min(filled, barWidth))
	return fmt.Sprintf("%-7s %4d/%-4d [%s%s]", label, cur, maxValue,
		strings.Repeat("#", filled), strings.Repeat(".", barWidth-filled))
}
