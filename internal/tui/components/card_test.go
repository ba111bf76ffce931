package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/carerev/internal/tui/theme"
)

// trueColor forces ANSI output for the duration of a test.
func trueColor(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
	theme.SetActive("flexoki-dark")
}

func TestLayoutRow(t *testing.T) {
	tests := []struct {
		total, n int
		want     []int
	}{
		{90, 3, []int{30, 30, 30}},
		{100, 3, []int{34, 33, 33}},
		{10, 0, nil},
	}
	for _, tt := range tests {
		got := LayoutRow(tt.total, tt.n)
		if len(got) != len(tt.want) {
			t.Fatalf("LayoutRow(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("LayoutRow(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
				break
			}
		}
	}
}

func TestMetricCardRow_PadsCardsWithoutDelta(t *testing.T) {
	trueColor(t)

	metrics := []Metric{
		{Label: "CCM Monthly", Value: "$4,014.26"},
		{Label: "RPM Monthly", Value: "$3,695.53"},
		{Label: "Monthly Total", Value: "$7,709.79", Delta: "$92.5K / year"},
	}
	const width = 100

	plain := MetricCard(metrics[0], 34)
	withDelta := MetricCard(metrics[2], 33)
	plainH, deltaH := lipgloss.Height(plain), lipgloss.Height(withDelta)
	if plainH >= deltaH {
		t.Fatalf("card heights: plain=%d delta=%d, want plain shorter", plainH, deltaH)
	}

	row := MetricCardRow(metrics, width)
	lines := strings.Split(row, "\n")
	if len(lines) != deltaH {
		t.Fatalf("row height = %d, want %d", len(lines), deltaH)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != width {
			t.Errorf("line %d width = %d, want %d", i, w, width)
		}
		// Below the plain cards the row starts with background padding, not bare spaces.
		if i >= plainH && !strings.HasPrefix(line, "\x1b[") {
			t.Errorf("line %d is unstyled padding: %q", i, line)
		}
	}
	if !strings.Contains(row, "$92.5K / year") {
		t.Error("row is missing the delta line")
	}
}

func TestCardRow_FormBesideResults(t *testing.T) {
	trueColor(t)

	form := FocusCard("Inputs", strings.Repeat("Total Medicare Patients  100\n", 8)+"RPM Device Readings (%)  75", 44, true)
	results := ContentCard("Results", "Monthly  $7,709.79\nAnnual   $92,517.48", 56)

	row := CardRow([]string{form, results})
	if got, want := lipgloss.Height(row), lipgloss.Height(form); got != want {
		t.Errorf("row height = %d, want %d (form height)", got, want)
	}
	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 100 {
			t.Errorf("line %d width = %d, want 100", i, w)
		}
	}
}

func TestFocusCard_UnfocusedMatchesContentCard(t *testing.T) {
	trueColor(t)

	body := "Patients  100"
	if FocusCard("Inputs", body, 40, false) != ContentCard("Inputs", body, 40) {
		t.Error("unfocused FocusCard should render as a ContentCard")
	}
	if FocusCard("Inputs", body, 40, true) == ContentCard("Inputs", body, 40) {
		t.Error("focused FocusCard should use the accent border")
	}
}

func TestCardInnerWidth(t *testing.T) {
	if got := CardInnerWidth(44); got != 40 {
		t.Errorf("CardInnerWidth(44) = %d, want 40", got)
	}
	if got := CardInnerWidth(5); got != 10 {
		t.Errorf("CardInnerWidth(5) = %d, want 10", got)
	}
}
