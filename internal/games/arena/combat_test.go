package arena

import (
	"testing"

	"github.com/vovakirdan/tui-boxhead/internal/core"
)

func TestShotStopsAtWallFace(t *testing.T) {
	text := "" +
		"############\n" +
		"#     #    #\n" +
		"# p   #    #\n" +
		"#         e#\n" +
		"############"
	a, rec := newTestArena(t, text, testConfig())
	g := a.GridSize()
	wallX := 6 * g
	cy := 2.5 * g

	a.Player.SetCenter(core.V(wallX-10, cy), a.Size())
	a.Player.Orientation = core.V(1, 0)
	a.shoot()

	if len(a.Bullets) != 1 {
		t.Fatalf("len(Bullets) = %d, expected 1", len(a.Bullets))
	}
	end := a.Bullets[0].End
	if !nearly(end.X, wallX) || !nearly(end.Y, cy) {
		t.Errorf("End = %v, expected (%v, %v)", end, wallX, cy)
	}
	if a.Enemies[0].HP != a.Enemies[0].MaxHP {
		t.Errorf("enemy HP = %d, expected untouched", a.Enemies[0].HP)
	}
	if rec.Count(SoundFire) != 1 {
		t.Errorf("fire sound played %d times, expected 1", rec.Count(SoundFire))
	}
}

func TestShotStopsAtVerticalWallFace(t *testing.T) {
	text := "" +
		"#######\n" +
		"#     #\n" +
		"#  p  #\n" +
		"#     #\n" +
		"###e###"
	a, _ := newTestArena(t, text, testConfig())
	g := a.GridSize()
	cx := 3.5 * g

	a.Enemies = nil
	a.Player.SetCenter(core.V(cx, 2.5*g), a.Size())
	a.Player.Orientation = core.V(0, -1)
	a.shoot()

	end := a.Bullets[0].End
	// The row 0 wall's bottom face is at y = g.
	if !nearly(end.X, cx) || !nearly(end.Y, g) {
		t.Errorf("End = %v, expected (%v, %v)", end, cx, g)
	}
}

func TestShotThroughGapEndsAtArenaEdge(t *testing.T) {
	text := "" +
		"### ###\n" +
		"#     #\n" +
		"#  p  #\n" +
		"#    e#\n" +
		"#######"
	a, _ := newTestArena(t, text, testConfig())
	g := a.GridSize()

	a.Player.Orientation = core.V(0, -1)
	a.shoot()

	end := a.Bullets[0].End
	if !nearly(end.X, 3.5*g) || !nearly(end.Y, 0) {
		t.Errorf("End = %v, expected (%v, 0)", end, 3.5*g)
	}
}

func TestShotKillsEnemy(t *testing.T) {
	text := "" +
		"##########\n" +
		"#p      e#\n" +
		"#        #\n" +
		"##########"
	a, rec := newTestArena(t, text, testConfig())
	e := a.Enemies[0]

	a.shoot()
	if e.HP != 60 {
		t.Errorf("HP after one shot = %d, expected 60", e.HP)
	}
	end := a.Bullets[0].End
	if !nearly(end.X, e.Center().X-e.Radius()) {
		t.Errorf("End.X = %v, expected %v", end.X, e.Center().X-e.Radius())
	}

	a.shoot()
	if e.HP != 20 {
		t.Errorf("HP after two shots = %d, expected 20", e.HP)
	}
	if len(a.Enemies) != 1 || a.Score != 0 {
		t.Fatalf("enemy removed too early: enemies = %d, score = %d", len(a.Enemies), a.Score)
	}

	a.shoot()
	if len(a.Enemies) != 0 {
		t.Errorf("len(Enemies) = %d, expected 0", len(a.Enemies))
	}
	if a.Score != 200 {
		t.Errorf("Score = %d, expected 200", a.Score)
	}
	if a.Kills != 1 {
		t.Errorf("Kills = %d, expected 1", a.Kills)
	}
	if len(a.Decals) != 3 {
		t.Errorf("len(Decals) = %d, expected 3", len(a.Decals))
	}
	if rec.Count(SoundFire) != 3 {
		t.Errorf("fire sound played %d times, expected 3", rec.Count(SoundFire))
	}
	if rec.Count(SoundEnemyDeath) != 1 {
		t.Errorf("death sound played %d times, expected 1", rec.Count(SoundEnemyDeath))
	}

	// A miss still leaves a trail and a sound.
	a.shoot()
	if len(a.Bullets) != 4 || rec.Count(SoundFire) != 4 {
		t.Errorf("miss: bullets = %d, fire sounds = %d, expected 4 and 4", len(a.Bullets), rec.Count(SoundFire))
	}
}

func TestShotHitsNearestEnemy(t *testing.T) {
	text := "" +
		"##########\n" +
		"#p  e  e #\n" +
		"#        #\n" +
		"##########"
	a, _ := newTestArena(t, text, testConfig())
	near, far := a.Enemies[0], a.Enemies[1]

	a.shoot()
	if near.HP != 60 || far.HP != 100 {
		t.Errorf("HP = (%d, %d), expected (60, 100)", near.HP, far.HP)
	}
	if end := a.Bullets[0].End; !nearly(end.X, 196) {
		t.Errorf("End.X = %v, expected 196", end.X)
	}
}

func TestShotBlockedByWall(t *testing.T) {
	text := "" +
		"##########\n" +
		"#p  # e  #\n" +
		"#        #\n" +
		"##########"
	a, _ := newTestArena(t, text, testConfig())

	a.shoot()
	if a.Enemies[0].HP != 100 {
		t.Errorf("HP = %d, expected 100", a.Enemies[0].HP)
	}
	if end := a.Bullets[0].End; !nearly(end.X, 192) {
		t.Errorf("End.X = %v, expected 192", end.X)
	}
}

func TestFireRateIsThrottled(t *testing.T) {
	text := "" +
		"################\n" +
		"#p            e#\n" +
		"#              #\n" +
		"################"
	a, rec := newTestArena(t, text, testConfig())
	in := core.NewInputFrame()
	in.Set(core.ActionFire)

	for i := 0; i < 30; i++ {
		a.Tick(1000.0/60, in)
	}
	// The first shot fires at once; the interval is between 250 and 350 ms.
	if got := rec.Count(SoundFire); got != 2 {
		t.Errorf("shots in 500 ms = %d, expected 2", got)
	}
}

func TestContactDamageAndRegen(t *testing.T) {
	text := "" +
		"##########\n" +
		"#pe      #\n" +
		"#        #\n" +
		"##########"
	a, rec := newTestArena(t, text, testConfig())
	p := a.Player
	e := a.Enemies[0]
	e.SetCenter(p.Center().Add(core.V(41, 0)), a.Size())

	steps := []struct {
		now      float64
		contact  bool
		expected int
	}{
		{0, true, 90},
		{100, true, 90},
		{500, true, 80},
		{600, false, 80},  // lockout after damage
		{2500, false, 85}, // lockout over
		{3000, false, 85}, // regen interval not elapsed
		{3500, false, 90},
	}
	for _, s := range steps {
		a.now = s.now
		if !s.contact {
			a.Enemies = nil
		}
		a.checkContact()
		a.regenerate()
		if p.HP != s.expected {
			t.Errorf("now %v: HP = %d, expected %d", s.now, p.HP, s.expected)
		}
	}
	if got := rec.Count(SoundPlayerHurt); got != 2 {
		t.Errorf("hurt sound played %d times, expected 2", got)
	}
}

func TestRegenStopsAtMax(t *testing.T) {
	a, _ := newTestArena(t, "#####\n#p e#\n#####", testConfig())
	a.Enemies = nil
	p := a.Player
	p.HP = p.MaxHP - 2

	a.now = 10000
	a.regenerate()
	if p.HP != p.MaxHP {
		t.Errorf("HP = %d, expected %d", p.HP, p.MaxHP)
	}
}

func TestHealthFloorsAtZero(t *testing.T) {
	a, _ := newTestArena(t, "#####\n#pe #\n#####", testConfig())
	p := a.Player
	p.HP = 5
	a.Enemies[0].SetCenter(p.Center().Add(core.V(30, 0)), a.Size())

	a.checkContact()
	if p.HP != 0 {
		t.Errorf("HP = %d, expected 0", p.HP)
	}
	if !a.GameOver() {
		t.Error("GameOver() = false, expected true")
	}
}

func TestDeadPlayerIsFrozen(t *testing.T) {
	text := "" +
		"##########\n" +
		"#p       #\n" +
		"#       e#\n" +
		"##########"
	a, rec := newTestArena(t, text, testConfig())
	p := a.Player
	p.HP = 0
	start := p.Pos
	enemyStart := a.Enemies[0].Pos

	in := core.NewInputFrame()
	in.Set(core.ActionMoveRight)
	in.Set(core.ActionFire)
	for i := 0; i < 10; i++ {
		a.Tick(1000.0/60, in)
	}

	if p.Pos != start {
		t.Errorf("dead player moved from %v to %v", start, p.Pos)
	}
	if rec.Count(SoundFire) != 0 {
		t.Error("dead player fired")
	}
	if a.Enemies[0].Pos == enemyStart {
		t.Error("enemies should keep moving after game over")
	}
}
