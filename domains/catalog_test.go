package domains

import "testing"

func TestCatalog_AllValid(t *testing.T) {
	for _, d := range Catalog() {
		t.Run(d.Name, func(t *testing.T) {
			if err := d.Validate(); err != nil {
				t.Errorf("built-in domain fails validation: %v", err)
			}
		})
	}
}

func TestCatalog_StableOrder(t *testing.T) {
	want := []string{"provider", "event", "test", "schema", "memory", "hook", "output"}
	got := Catalog()
	if len(got) != len(want) {
		t.Fatalf("catalog has %d domains, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("catalog[%d] = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestCatalog_FreshCopies(t *testing.T) {
	a := Catalog()
	a[0].Functions[0].Name = "mutated"
	b := Catalog()
	if b[0].Functions[0].Name == "mutated" {
		t.Error("Catalog shares state between calls")
	}
}

func TestByName(t *testing.T) {
	d, ok := ByName("memory")
	if !ok {
		t.Fatal("memory domain not found")
	}
	if d.FunctionCount() != 8 {
		t.Errorf("memory has %d functions, want 8", d.FunctionCount())
	}

	if _, ok := ByName("nope"); ok {
		t.Error("unknown domain reported as found")
	}
}
