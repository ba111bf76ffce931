package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/theirongolddev/carerev/internal/model"
	"github.com/theirongolddev/carerev/internal/pipeline"
	"github.com/theirongolddev/carerev/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

func newTestApp() App {
	theme.SetActive("flexoki-dark")
	return NewApp(Options{
		Defaults: model.DefaultParams(),
		Initial:  model.DefaultParams(),
		Engine:   pipeline.NewEngine(nil),
		Log:      zerolog.Nop(),
	})
}

func update(a App, msg tea.Msg) App {
	m, _ := a.Update(msg)
	return m.(App)
}

func sized(a App, w, h int) App {
	return update(a, tea.WindowSizeMsg{Width: w, Height: h})
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeInto(a App, s string) App {
	for _, r := range s {
		a = update(a, keyPress(string(r)))
	}
	return a
}

func clearField(a App) App {
	for range len(a.form.inputs[a.form.focus].Value()) {
		a = update(a, keyPress("backspace"))
	}
	return a
}

func TestNewApp_ComputesDefaults(t *testing.T) {
	a := newTestApp()
	want := pipeline.ProjectAnnual(model.DefaultParams())
	if a.proj.Result != want {
		t.Fatalf("result = %+v, want %+v", a.proj.Result, want)
	}
	if !a.form.editing || a.form.focus != 0 {
		t.Fatalf("form should start focused on the first field")
	}
	if got := a.form.inputs[0].Value(); got != "100" {
		t.Errorf("patient count input = %q, want 100", got)
	}
}

func TestTypingRecomputes(t *testing.T) {
	a := newTestApp()
	a = clearField(a)
	if a.params.PatientCount != 0 || a.proj.Result.MonthlyRevenue != 0 {
		t.Fatalf("empty input should coerce to 0, got %d / %v", a.params.PatientCount, a.proj.Result.MonthlyRevenue)
	}

	a = typeInto(a, "200")
	if a.params.PatientCount != 200 {
		t.Fatalf("PatientCount = %d, want 200", a.params.PatientCount)
	}
	if a.proj.Result.CCMPatients != 100 {
		t.Errorf("CCMPatients = %d, want 100", a.proj.Result.CCMPatients)
	}
}

func TestGarbageInputCoercesToZero(t *testing.T) {
	a := newTestApp()
	a = update(a, keyPress("tab")) // ccm-participation
	a = clearField(a)
	a = typeInto(a, "abc")
	if a.params.CCMParticipation != 0 {
		t.Fatalf("CCMParticipation = %v, want 0", a.params.CCMParticipation)
	}
	if a.proj.Result.CCMRevenue != 0 {
		t.Errorf("CCMRevenue = %v, want 0", a.proj.Result.CCMRevenue)
	}
	if a.form.inputs[1].Value() != "abc" {
		t.Errorf("raw input should be kept as typed, got %q", a.form.inputs[1].Value())
	}
}

func TestFocusNavigationWraps(t *testing.T) {
	a := newTestApp()
	a = update(a, keyPress("shift+tab"))
	if want := len(model.Fields) - 1; a.form.focus != want {
		t.Fatalf("focus = %d, want %d", a.form.focus, want)
	}
	a = update(a, keyPress("tab"))
	if a.form.focus != 0 {
		t.Fatalf("focus = %d, want 0", a.form.focus)
	}
}

func TestNavigationKeysOnlyOutsideForm(t *testing.T) {
	a := newTestApp()

	// While editing, "2" is text, not a tab switch.
	a = update(a, keyPress("2"))
	if a.activeTab != 0 {
		t.Fatalf("activeTab = %d while editing, want 0", a.activeTab)
	}
	if a.params.PatientCount != 1002 {
		t.Fatalf("PatientCount = %d, want 1002", a.params.PatientCount)
	}

	a = update(a, keyPress("esc"))
	if a.form.editing {
		t.Fatal("esc should leave the form")
	}
	a = update(a, keyPress("2"))
	if a.activeTab != 1 {
		t.Fatalf("activeTab = %d, want 1", a.activeTab)
	}
	a = update(a, keyPress("3"))
	if a.activeTab != 2 {
		t.Fatalf("activeTab = %d, want 2", a.activeTab)
	}

	a = update(a, keyPress("enter"))
	if a.activeTab != 0 || !a.form.editing {
		t.Fatal("enter should jump back into the form")
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	a := newTestApp()
	a = clearField(a)
	a = typeInto(a, "5")
	a = update(a, keyPress("esc"))
	a = update(a, keyPress("r"))

	if a.params != model.DefaultParams() {
		t.Fatalf("params = %+v, want defaults", a.params)
	}
	if got := a.form.inputs[0].Value(); got != "100" {
		t.Errorf("input = %q after reset, want 100", got)
	}
}

func TestHelpToggle(t *testing.T) {
	a := sized(newTestApp(), 120, 40)
	a = update(a, keyPress("esc"))
	a = update(a, keyPress("?"))
	if !a.showHelp {
		t.Fatal("? should open help")
	}
	if !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Error("help overlay not rendered")
	}
	a = update(a, keyPress("q"))
	if a.showHelp {
		t.Fatal("any key should close help")
	}
}

func TestMemoSkipsUnchangedInputs(t *testing.T) {
	a := sized(newTestApp(), 140, 40)
	n := a.memo.Computations()

	a = update(a, keyPress("tab"))
	a = update(a, keyPress("shift+tab"))
	_ = a.View()
	if got := a.memo.Computations(); got != n {
		t.Fatalf("computations = %d after focus moves, want %d", got, n)
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := sized(newTestApp(), 60, 20)
	if !strings.Contains(a.View(), "too narrow") {
		t.Error("expected narrow-terminal message")
	}
}

func TestViewRendersEachTab(t *testing.T) {
	for _, width := range []int{90, 150} {
		a := sized(newTestApp(), width, 50)
		a = update(a, keyPress("esc"))

		checks := []struct {
			key  string
			want string
		}{
			{"1", "Annual Revenue"},
			{"2", "Enrollment Schedule"},
			{"3", "99490"},
		}
		for _, c := range checks {
			a = update(a, keyPress(c.key))
			if out := a.View(); !strings.Contains(out, c.want) {
				t.Errorf("width %d tab %s: view missing %q", width, c.key, c.want)
			}
		}
	}
}

func TestConfigErrorShownInStatusBar(t *testing.T) {
	a := NewApp(Options{
		Defaults:  model.DefaultParams(),
		Initial:   model.DefaultParams(),
		ConfigErr: errors.New("bad toml"),
		Log:       zerolog.Nop(),
	})
	a = sized(a, 160, 40)
	if !strings.Contains(a.View(), "bad toml") {
		t.Error("config error not shown")
	}
}
