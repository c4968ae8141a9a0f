package contents

import "testing"

func TestCounter_Top(t *testing.T) {
	counter := Counter{
		"devel/gcc":    40,
		"shells/zsh":   25,
		"net/rsync":    25,
		"admin/apt":    10,
		"editors/nano": 5,
	}

	top := counter.Top(3)
	if len(top) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(top))
	}

	want := []Stat{
		{Package: "devel/gcc", Files: 40},
		{Package: "net/rsync", Files: 25}, // tie with zsh, name breaks it
		{Package: "shells/zsh", Files: 25},
	}
	for i, stat := range top {
		if stat != want[i] {
			t.Errorf("top[%d] = %+v, want %+v", i, stat, want[i])
		}
	}
}

func TestCounter_Top_FewerThanN(t *testing.T) {
	counter := Counter{"admin/apt": 2}
	top := counter.Top(10)
	if len(top) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(top))
	}
	if top[0].Package != "admin/apt" || top[0].Files != 2 {
		t.Errorf("unexpected entry: %+v", top[0])
	}
}

func TestCounter_Top_NonPositive(t *testing.T) {
	counter := Counter{"admin/apt": 2}
	if top := counter.Top(0); top != nil {
		t.Errorf("Top(0) = %v, want nil", top)
	}
	if top := counter.Top(-1); top != nil {
		t.Errorf("Top(-1) = %v, want nil", top)
	}
}

func TestCounter_Top_Empty(t *testing.T) {
	counter := make(Counter)
	if top := counter.Top(10); len(top) != 0 {
		t.Errorf("expected empty ranking, got %v", top)
	}
}
