package theme

import "testing"

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("tokyo-night").Name; got != "tokyo-night" {
		t.Errorf("ByName(tokyo-night) = %q", got)
	}
	if got := ByName("nope").Name; got != FlexokiDark.Name {
		t.Errorf("ByName(nope) = %q, want %q", got, FlexokiDark.Name)
	}
}

func TestNextCycles(t *testing.T) {
	names := Names()
	name := names[0]
	for i := range names {
		name = Next(name)
		if want := names[(i+1)%len(names)]; name != want {
			t.Fatalf("step %d: got %q, want %q", i, name, want)
		}
	}
	if got := Next("unknown"); got != names[0] {
		t.Errorf("Next(unknown) = %q, want %q", got, names[0])
	}
}
