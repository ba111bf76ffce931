package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type sample struct {
	Code   string  `json:"code" yaml:"code"`
	Amount float64 `json:"amount" yaml:"amount"`
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{" JSON ", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncode_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, FormatJSON, sample{Code: "99490", Amount: 2903.52}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var got sample
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Code != "99490" || got.Amount != 2903.52 {
		t.Errorf("got %+v", got)
	}
}

func TestEncode_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, FormatYAML, []sample{{Code: "99453", Amount: 19.73}}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), "code: \"99453\"") {
		t.Errorf("yaml output missing quoted code: %q", buf.String())
	}
	var got []sample
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 1 || got[0].Code != "99453" {
		t.Errorf("got %+v", got)
	}
}

func TestEncode_TableIsRejected(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, FormatTable, sample{}); err == nil {
		t.Fatal("expected error for table format")
	}
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Code", "Amount"},
		Rows: [][]string{
			{"99490", "$2,903.52"},
			{SeparatorRow},
			{"Total", "$4,014.26"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top, header, rule, row, separator, row, bottom
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "$4,014.26") || !strings.Contains(out, "99490") {
		t.Errorf("cells missing:\n%s", out)
	}
}

func TestRenderHorizontalBar_Width(t *testing.T) {
	for _, v := range []float64{0, 5, 10, 20} {
		bar := RenderHorizontalBar(v, 10, 8)
		if got := len([]rune(stripANSI(bar))); got != 8 {
			t.Errorf("bar(%v) width = %d, want 8", v, got)
		}
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	esc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			esc = true
		case esc:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				esc = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
