package registry

import (
	"testing"

	"github.com/vovakirdan/dragon-ascent/internal/core"
)

type stubGame struct {
	id  string
	out core.Outputs
}

func (s *stubGame) ID() string { return s.id }
func (s *stubGame) Title() string { return "Stub " + s.id }
func (s *stubGame) Reset(core.RuntimeConfig) {}
func (s *stubGame) Begin() {}
func (s *stubGame) Step(core.InputState) core.StepResult { return core.StepResult{} }
func (s *stubGame) Resize(int, int) {}
func (s *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", func(out core.Outputs) Game { return &stubGame{id: "zz_stub", out: out} })

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub", core.Outputs{})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	stub := g.(*stubGame)
	if stub.out.Presenter == nil || stub.out.HUD == nil {
		t.Error("Create should fill nil outputs with no-ops")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "Stub zz_stub" {
				t.Errorf("title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List should include the registered game")
	}

	if _, err := Create("missing", core.Outputs{}); err == nil {
		t.Error("unknown id should be an error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(core.Outputs) Game { return &stubGame{id: "zz_dup"} }
	Register("zz_dup", f)

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("zz_dup", f)
}
