package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-brawler/internal/core"
)

type stubGame struct {
	id    string
	reset *core.RuntimeConfig
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(rc core.RuntimeConfig)          { g.reset = &rc }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestCreateResetsGame(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })
	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	rc := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 30, Seed: 5}
	g, err := Create("zz_stub", rc)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	stub := g.(*stubGame)
	if stub.reset == nil || *stub.reset != rc {
		t.Errorf("Reset got %+v, want %+v", stub.reset, rc)
	}

	again, _ := Create("zz_stub", rc)
	if again == g {
		t.Error("Create must build a fresh game every time")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("zz_b", func() Game { return &stubGame{id: "zz_b"} })
	Register("zz_a", func() Game { return &stubGame{id: "zz_a"} })

	var got []GameInfo
	for _, info := range List() {
		if info.ID == "zz_a" || info.ID == "zz_b" {
			got = append(got, info)
		}
	}
	want := []GameInfo{{"zz_a", "Stub zz_a"}, {"zz_b", "Stub zz_b"}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("List() = %+v, want %+v", got, want)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("missing", core.DefaultConfig())
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("err = %v, want ErrUnknownGame", err)
	}
	if Exists("missing") {
		t.Error("missing game should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}
