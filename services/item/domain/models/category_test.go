package models

import "testing"

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(string(c))
		if err != nil || got != c {
			t.Fatalf("ParseCategory(%q) = %q, %v", c, got, err)
		}
	}

	for _, bad := range []string{"", "keys", "Keys ", "Pets"} {
		if _, err := ParseCategory(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestCategories_ReturnsCopy(t *testing.T) {
	list := Categories()
	if len(list) != 7 {
		t.Fatalf("expected 7 categories, got %d", len(list))
	}
	list[0] = "Mutated"
	if Categories()[0] != CategoryElectronics {
		t.Fatal("Categories must return a copy")
	}
}

func TestParseLocation(t *testing.T) {
	for _, l := range Locations() {
		got, err := ParseLocation(string(l))
		if err != nil || got != l {
			t.Fatalf("ParseLocation(%q) = %q, %v", l, got, err)
		}
	}

	if _, err := ParseLocation("Lecture Hall C"); err == nil {
		t.Fatal("expected error for unknown location")
	}
	if len(Locations()) != 11 {
		t.Fatalf("expected 11 locations, got %d", len(Locations()))
	}
	if !LocationOther.Valid() {
		t.Fatal("Other must be a valid location")
	}
}
