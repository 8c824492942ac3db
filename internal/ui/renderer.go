package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/samdwyer/arenasurvivors/internal/combat"
	"github.com/samdwyer/arenasurvivors/internal/entity"
	"github.com/samdwyer/arenasurvivors/internal/gamedata"
	"github.com/samdwyer/arenasurvivors/internal/world"
)

// Terminal cells are roughly twice as tall as wide, so one world unit spans
// two columns and one row.
const (
	colsPerUnit = 2
	rowsPerUnit = 1
	hudRows     = 2
)

var (
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleTrail   = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleFoeZone = tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
	styleShield  = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleOrb     = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	stylePickup  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleBox     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleCursor  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Project maps a world position to a screen cell in a width x height
// viewport centered on origin. +Z is up on screen.
func Project(origin, p mgl32.Vec3, width, height int) (x, y int) {
	d := p.Sub(origin)
	x = width/2 + int(roundf(d.X()*colsPerUnit))
	y = height/2 - int(roundf(d.Z()*rowsPerUnit))
	return x, y
}

func roundf(v float32) float32 {
	if v < 0 {
		return v - 0.5
	}
	return v + 0.5
}

// Render draws the arena around the player, the HUD and any overlay.
// cursor is the highlighted candidate while a level-up offer is open.
func (r *Renderer) Render(a *combat.Arena, cursor int) {
	r.screen.Clear()
	width, height := r.screen.Size()
	view := height - hudRows

	origin := a.Player().Position()
	w := a.World()

	for _, e := range w.Effects() {
		r.drawEffect(e, origin, width, view)
	}
	for _, p := range w.Pickups() {
		r.plot(origin, p.Position, width, view, '+', stylePickup)
	}
	for _, e := range a.Roster().Members() {
		r.plot(origin, e.Position(), width, view, e.Glyph(), enemyStyle(e))
	}
	if a.Player().Alive() {
		r.plot(origin, origin, width, view, a.Player().Glyph(), stylePlayer)
	}

	r.drawHUD(a, width, height)

	switch a.Phase() {
	case combat.PhaseAwaitingChoice:
		r.drawOffer(a, cursor, width, height)
	case combat.PhasePaused:
		r.drawCentered([]string{"PAUSED", "", "p to resume, q to quit"}, -1, width, height)
	case combat.PhaseGameOver:
		r.drawSummary(a, width, height)
	}

	r.screen.Show()
}

func (r *Renderer) plot(origin, p mgl32.Vec3, width, height int, ch rune, style tcell.Style) {
	x, y := Project(origin, p, width, height)
	if x < 0 || y < 0 || x >= width || y >= height {
		return
	}
	r.screen.SetContent(x, y, ch, style)
}

func (r *Renderer) drawEffect(e *world.Effect, origin mgl32.Vec3, width, height int) {
	switch e.Shape {
	case world.ShapeCube:
		style := styleTrail
		if !e.Tags.Has(world.TagPlayer) {
			style = styleFoeZone
		}
		b := e.Bounds()
		x0, y1 := Project(origin, b.Min, width, height)
		x1, y0 := Project(origin, b.Max, width, height)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if x >= 0 && y >= 0 && x < width && y < height {
					r.screen.SetContent(x, y, '░', style)
				}
			}
		}
	case world.ShapeSphere:
		for i := 0; i < 16; i++ {
			angle := float64(i) / 16 * 2 * math.Pi
			p := e.Center.Add(mgl32.Vec3{
				e.Half * float32(math.Cos(angle)),
				0,
				e.Half * float32(math.Sin(angle)),
			})
			r.plot(origin, p, width, height, '·', styleShield)
		}
	case world.ShapeOrb:
		r.plot(origin, e.Center, width, height, '*', styleOrb)
	}
}

func enemyStyle(e *entity.Entity) tcell.Style {
	return tcell.StyleDefault.Foreground(gamedata.TCellColor(e.Color()))
}

func (r *Renderer) drawHUD(a *combat.Arena, width, height int) {
	p := a.Player()
	top := height - hudRows
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, top, '─', styleDim)
	}

	status := fmt.Sprintf(" HP %d/%d  XP %d/%d  LV %d  Kills %d  Time %s  %s",
		max(p.Health(), 0), p.MaxHealth(),
		a.Experience(), combat.ExperiencePerLevel,
		a.Level(), a.Kills(),
		formatClock(a.Countdown()),
		a.Phase())
	x := r.screen.DrawText(0, top+1, status, styleHUD)
	x += 2
	for _, inst := range p.Abilities() {
		x = r.screen.DrawText(x, top+1, fmt.Sprintf("[%s %d] ", inst.Title(), inst.Level()), styleDim)
	}
}

func (r *Renderer) drawOffer(a *combat.Arena, cursor int, width, height int) {
	offer := a.Offer()
	if offer == nil {
		return
	}
	lines := []string{fmt.Sprintf("LEVEL %d: choose an ability", offer.PlayerLevel), ""}
	for _, c := range offer.Candidates {
		kind := "new"
		if c.Upgrade() {
			kind = fmt.Sprintf("lv %d", c.NextLevel())
		}
		lines = append(lines, fmt.Sprintf("%-18s %-6s %s", c.Title(), kind, c.Definition.Description()))
	}
	lines = append(lines, "")
	if offer.Valid(cursor) {
		def := offer.Candidates[cursor].Definition
		lines = append(lines, def.Tooltip(), def.Flavor(), "")
	}
	lines = append(lines, "up/down to move, enter to pick")
	r.drawCentered(lines, cursor+2, width, height)
}

func (r *Renderer) drawSummary(a *combat.Arena, width, height int) {
	title := "YOU SURVIVED"
	if a.Result() == combat.ResultDefeat {
		title = "DEFEATED"
	}
	elapsed := a.Settings().Countdown - a.Countdown()
	lines := []string{
		title,
		"",
		fmt.Sprintf("Time    %s", formatClock(elapsed)),
		fmt.Sprintf("Kills   %d", a.Kills()),
		fmt.Sprintf("Score   %d", a.Score()),
		fmt.Sprintf("Level   %d", a.Level()),
		"",
		"q to quit",
	}
	r.drawCentered(lines, -1, width, height)
}

// drawCentered draws a boxed text block; line highlight gets the cursor style.
func (r *Renderer) drawCentered(lines []string, highlight int, width, height int) {
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	x0 := max((width-boxW)/2, 0)
	y0 := max((height-boxH)/2, 0)

	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			r.screen.SetContent(x, y, ' ', styleBox)
		}
	}
	for i, l := range lines {
		style := styleBox
		if i == highlight {
			style = styleCursor
		}
		r.screen.DrawText(x0+2, y0+1+i, l, style)
	}
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
