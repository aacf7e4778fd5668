package arena

import (
	"math/rand"

	"github.com/vovakirdan/tui-boxhead/internal/config"
	"github.com/vovakirdan/tui-boxhead/internal/core"
)

// Player is the controlled body. Its fire, hurt and regen rates are each
// gated by their own throttle.
type Player struct {
	Body

	fire  *core.Throttle
	hurt  *core.Throttle
	regen *core.Throttle

	lastHurt float64
	wounded  bool
}

func newPlayer(pos core.Vec2, p config.PlayerSettings, w config.WeaponSettings, rng *rand.Rand) *Player {
	lo, hi := int(w.FireIntervalMinMs), int(w.FireIntervalMaxMs)
	return &Player{
		Body: Body{
			Pos:         pos,
			Size:        p.Size,
			Orientation: core.V(1, 0),
			HP:          p.MaxHP,
			MaxHP:       p.MaxHP,
		},
		fire: core.NewVariableThrottle(func() float64 {
			return float64(lo + rng.Intn(hi-lo+1))
		}),
		hurt:  core.NewThrottle(p.HurtIntervalMs),
		regen: core.NewThrottle(p.RegenIntervalMs),
	}
}

// updatePlayer runs the player's part of a tick: movement, contact
// damage, regeneration and firing. A dead player ignores input.
func (a *Arena) updatePlayer(dt float64, in core.InputFrame) {
	p := a.Player
	p.Vel = core.Vec2{}
	if !p.Alive() {
		return
	}

	if dir := in.Direction(); !dir.IsZero() {
		p.Vel = dir.Normalize().Scale(a.cfg.Player.Speed * dt)
	}
	move(a, &p.Body)

	a.checkContact()
	if !p.Alive() {
		return
	}
	a.regenerate()

	if in.Has(core.ActionFire) {
		p.fire.Try(a.now, a.shoot)
	}
}

// checkContact hurts the player when any enemy is in contact.
func (a *Arena) checkContact() {
	p := a.Player
	for _, e := range a.Enemies {
		if !touching(&p.Body, &e.Body, a.cfg.Player.ContactMargin) {
			continue
		}
		p.hurt.Try(a.now, func() {
			p.HP = max(0, p.HP-a.cfg.Player.HurtDamage)
			p.lastHurt = a.now
			p.wounded = true
			a.addDecal(p.Center())
			a.sound.Play(SoundPlayerHurt)
		})
		return
	}
}

// regenerate heals the player once per regen window while below max HP
// and outside the lockout that follows damage.
func (a *Arena) regenerate() {
	p := a.Player
	if p.HP >= p.MaxHP {
		return
	}
	if p.wounded && a.now-p.lastHurt < a.cfg.Player.RegenLockoutMs {
		return
	}
	p.regen.Try(a.now, func() {
		p.HP = min(p.MaxHP, p.HP+a.cfg.Player.RegenAmount)
	})
}
