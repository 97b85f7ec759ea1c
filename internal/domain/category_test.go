package domain

import "testing"

func TestValidCategory(t *testing.T) {
	for _, name := range Categories() {
		if !ValidCategory(name) {
			t.Fatalf("expected registry category %q to be valid", name)
		}
	}

	invalid := []string{"", "bogus_table", "Assets", "assets;drop table users", "users", "password_resets"}
	for _, name := range invalid {
		if ValidCategory(name) {
			t.Fatalf("expected %q to be rejected", name)
		}
	}
}

func TestCategoriesCount(t *testing.T) {
	if got := len(Categories()); got != 18 {
		t.Fatalf("expected 18 categories, got %d", got)
	}
}
