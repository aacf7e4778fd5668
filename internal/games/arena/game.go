package arena

import (
	"fmt"

	"github.com/vovakirdan/tui-boxhead/internal/config"
	"github.com/vovakirdan/tui-boxhead/internal/core"
	"github.com/vovakirdan/tui-boxhead/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// customLayout replaces every built-in map when set via CLI
var customLayout string

// configured holds the config checked by Configure. The setters clear it.
var configured *config.ArenaConfig

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
	configured = nil
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	configured = nil
	return nil
}

// SetLayoutFile loads a map file that replaces the built-in maps.
// The file is validated here so a broken map fails before the game starts.
func SetLayoutFile(path string) error {
	configured = nil
	if path == "" {
		customLayout = ""
		return nil
	}
	_, text, err := LoadLayoutFile(path)
	if err != nil {
		return err
	}
	customLayout = text
	return nil
}

// LoadConfig returns the arena configuration the CLI settings select.
// A layout in the config must parse like any map file.
func LoadConfig() (config.ArenaConfig, error) {
	if configured != nil {
		return *configured, nil
	}
	cfg, err := config.LoadArena(configPath)
	config.ApplyArenaPreset(&cfg, difficultyPreset)
	if err != nil {
		return cfg, err
	}
	if cfg.Arena.Layout != "" {
		if _, err := ParseLayout(cfg.Arena.Layout); err != nil {
			return cfg, fmt.Errorf("config: arena.layout: %w", err)
		}
	}
	return cfg, nil
}

// Configure loads and checks the configuration once. Games created
// afterwards reuse it instead of reading the file again.
func Configure() (config.ArenaConfig, error) {
	configured = nil
	cfg, err := LoadConfig()
	if err != nil {
		return cfg, err
	}
	configured = &cfg
	return cfg, nil
}

func init() {
	for _, m := range BuiltinMaps() {
		if _, err := ParseLayout(m.Text); err != nil {
			panic(fmt.Sprintf("arena: built-in map %s: %v", m.ID, err))
		}
		registry.Register(m.ID, func() registry.Game { return NewGame(m) })
	}
}

// overlay button actions
const (
	buttonResume = iota
	buttonRestart
)

type button struct {
	label  string
	action int
	rect   core.Rect
}

// Game adapts an Arena to the platform: it owns restarts, pausing and the
// overlays drawn on top of the world.
type Game struct {
	info    MapInfo
	runtime core.RuntimeConfig
	cfg     config.ArenaConfig
	arena   *Arena

	paused   bool
	selected int
	screenW  int
	screenH  int
}

// NewGame creates a game for one map.
func NewGame(m MapInfo) *Game {
	return &Game{info: m}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.info.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Boxhead: " + g.info.Title
}

// Reset starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime.WithDefaults()
	g.screenW, g.screenH = runtime.ScreenW, runtime.ScreenH

	cfg, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("arena: %v", err))
	}
	g.cfg = cfg

	layout, err := ParseLayout(g.layoutText())
	if err != nil {
		panic(fmt.Sprintf("arena: map %s: %v", g.info.ID, err))
	}

	a, err := New(layout, cfg, g.runtime.Seed, g.runtime.Services)
	if err != nil {
		panic(fmt.Sprintf("arena: %v", err))
	}
	g.arena = a
	g.paused = false
	g.selected = buttonResume
}

// layoutText picks the map: CLI file, then config, then built-in.
func (g *Game) layoutText() string {
	switch {
	case customLayout != "":
		return customLayout
	case g.cfg.Arena.Layout != "":
		return g.cfg.Arena.Layout
	default:
		return g.info.Text
	}
}

// Preview returns the map this game plays, in map-file form.
func (g *Game) Preview() string {
	return g.layoutText()
}

// Arena exposes the simulation for snapshots and headless runs.
func (g *Game) Arena() *Arena {
	return g.arena
}

// Config returns the configuration of the current run.
func (g *Game) Config() config.ArenaConfig {
	return g.cfg
}

// HandleFrame consumes once-per-frame input: pause toggling, overlay
// buttons and restart after game over.
func (g *Game) HandleFrame(in core.InputFrame) {
	if g.arena.GameOver() {
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) || g.clicked(in, g.gameOverButtons()) == buttonRestart {
			g.restart()
		}
		return
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.selected = buttonResume
		return
	}
	if !g.paused {
		return
	}

	buttons := g.pauseButtons()
	if in.Pointer.Valid {
		for i, b := range buttons {
			if b.rect.Contains(in.Pointer.X, in.Pointer.Y) {
				g.selected = i
			}
		}
	}
	switch {
	case in.Has(core.ActionRestart):
		g.activate(buttonRestart)
	case g.clicked(in, buttons) >= 0:
		g.activate(g.clicked(in, buttons))
	case in.Has(core.ActionConfirm):
		g.activate(buttons[g.selected].action)
	}
}

// clicked returns the action of the button under a click, or -1.
func (g *Game) clicked(in core.InputFrame, buttons []button) int {
	if !in.Pointer.Clicked {
		return -1
	}
	for _, b := range buttons {
		if b.rect.Contains(in.Pointer.X, in.Pointer.Y) {
			return b.action
		}
	}
	return -1
}

func (g *Game) activate(action int) {
	switch action {
	case buttonResume:
		g.paused = false
	case buttonRestart:
		g.restart()
	}
}

// restart begins a new run on the next seed so runs differ but stay
// reproducible from the first seed.
func (g *Game) restart() {
	g.runtime.Seed++
	g.runtime.ScreenW, g.runtime.ScreenH = g.screenW, g.screenH
	g.Reset(g.runtime)
}

// Step advances the simulation by one tick. Enemies keep moving after the
// player dies; only pausing stops the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.paused {
		g.arena.Tick(1000.0/float64(g.runtime.TickRate), in)
	}
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.arena == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.arena.Score,
		Best:     g.arena.Best(),
		Wave:     g.arena.Wave() + 1,
		Kills:    g.arena.Kills,
		GameOver: g.arena.GameOver(),
		Paused:   g.paused,
	}
}

// Render draws the HUD, the world and any overlay.
func (g *Game) Render(dst *core.Screen) {
	g.screenW, g.screenH = dst.Width(), dst.Height()

	cv := core.NewCanvas(dst, g.arena.Camera(dst.Width(), dst.Height()-1, 1))
	g.arena.Draw(cv)
	g.arena.DrawHUD(dst, 0)

	switch {
	case g.arena.GameOver():
		g.renderGameOver(dst)
	case g.paused:
		g.renderPause(dst)
	}
}

// overlayBox returns a centered box of the given size.
func (g *Game) overlayBox(w, h int) core.Rect {
	return core.NewRect((g.screenW-w)/2, (g.screenH-h)/2, w, h)
}

func (g *Game) pauseButtons() []button {
	box := g.overlayBox(30, 7)
	y := box.Y + 4
	return []button{
		{label: "[ Resume ]", action: buttonResume, rect: core.NewRect(box.X+3, y, 10, 1)},
		{label: "[ Restart ]", action: buttonRestart, rect: core.NewRect(box.X+16, y, 11, 1)},
	}
}

func (g *Game) gameOverButtons() []button {
	box := g.overlayBox(34, 8)
	return []button{
		{label: "[ Restart ]", action: buttonRestart, rect: core.NewRect(box.X+11, box.Y+5, 11, 1)},
	}
}

func (g *Game) drawPanel(dst *core.Screen, box core.Rect, c core.Color) {
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
}

func (g *Game) renderPause(dst *core.Screen) {
	box := g.overlayBox(30, 7)
	g.drawPanel(dst, box, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+2, "PAUSED", core.ColorBrightYellow)
	for i, b := range g.pauseButtons() {
		col := core.ColorGray
		if i == g.selected {
			col = core.ColorBrightWhite
		}
		dst.DrawTextColor(b.rect.X, b.rect.Y, b.label, col)
	}
}

func (g *Game) renderGameOver(dst *core.Screen) {
	box := g.overlayBox(34, 8)
	g.drawPanel(dst, box, core.ColorBrightRed)
	dst.DrawTextCentered(box.Y+1, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(box.Y+3, fmt.Sprintf("Score %d  Kills %d  Wave %d", g.arena.Score, g.arena.Kills, g.arena.Wave()+1), core.ColorWhite)
	if g.arena.Score > 0 && g.arena.Score >= g.arena.Best() {
		dst.DrawTextCentered(box.Y+4, "NEW BEST!", core.ColorBrightYellow)
	}
	for _, b := range g.gameOverButtons() {
		dst.DrawTextColor(b.rect.X, b.rect.Y, b.label, core.ColorBrightWhite)
	}
	dst.DrawTextCentered(box.Y+6, "R restart  B menu", core.ColorGray)
}
