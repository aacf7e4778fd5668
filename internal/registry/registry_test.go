package registry

import (
	"testing"

	"github.com/vovakirdan/tui-boxhead/internal/core"
)

type stubGame struct {
	id    string
	steps int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.steps = 0 }
func (g *stubGame) HandleFrame(core.InputFrame) {}
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{Score: g.steps} }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("Exists() = false after Register")
	}
	if Exists("zz-missing") {
		t.Error("Exists() = true for an unknown ID")
	}

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.Title() != "Stub zz-stub" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Stub zz-stub")
	}

	other, _ := Create("zz-stub")
	g.Step(core.NewInputFrame())
	if other.State().Score != 0 {
		t.Error("Create() should return a fresh instance")
	}

	if _, err := Create("zz-missing"); err == nil {
		t.Error("Create() of an unknown ID should fail")
	}

	found := false
	list := List()
	for i, info := range list {
		if i > 0 && list[i-1].ID >= info.ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, info.ID)
		}
		if info.ID == "zz-stub" && info.Title == "Stub zz-stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() is missing the registered game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("second Register() with the same ID should panic")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}
