package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"vending-system/internal/catalog"
	"vending-system/internal/repository"
)

func TestLoad_Fixture(t *testing.T) {
	ctx := context.Background()
	cat, err := catalog.Load(filepath.Join("testdata", "catalog.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cat.Items) != 3 {
		t.Fatalf("items len got=%d want=%d", len(cat.Items), 3)
	}
	if len(cat.Suggestions) != 1 {
		t.Fatalf("suggestions len got=%d want=%d", len(cat.Suggestions), 1)
	}

	inv := repository.NewInventoryRepository()
	sugg := repository.NewSuggestionRepository()
	if err := cat.Apply(ctx, inv, sugg); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	// Codes are upper-cased at the insertion boundary.
	it, err := inv.Get(ctx, "A1")
	if err != nil {
		t.Fatalf("Get A1: %v", err)
	}
	if it.Price != 150 {
		t.Fatalf("A1 price got=%d want=%d", it.Price, 150)
	}

	// "1.3" reads as tenths, the machine's money grammar.
	crisps, err := inv.Get(ctx, "C1")
	if err != nil {
		t.Fatalf("Get C1: %v", err)
	}
	if crisps.Price != 130 {
		t.Fatalf("C1 price got=%d want=%d", crisps.Price, 130)
	}

	if got, ok := sugg.Get(ctx, "A1"); !ok || got != "C1" {
		t.Fatalf("suggestion got=%q,%v want=%q,true", got, ok, "C1")
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "missing file", body: ""},
		{name: "bad price", body: "items:\n  - {code: A1, name: X, category: Y, price: nope, stock: 1}\n"},
		{name: "zero price", body: "items:\n  - {code: A1, name: X, category: Y, price: \"0\", stock: 1}\n"},
		{name: "negative stock", body: "items:\n  - {code: A1, name: X, category: Y, price: \"1.00\", stock: -1}\n"},
		{name: "empty code", body: "items:\n  - {code: \"\", name: X, category: Y, price: \"1.00\", stock: 1}\n"},
		{name: "no items", body: "suggestions:\n  - {from: A1, suggest: C2}\n"},
		{name: "half suggestion", body: "items:\n  - {code: A1, name: X, category: Y, price: \"1.00\", stock: 1}\nsuggestions:\n  - {from: A1, suggest: \"\"}\n"},
	}

	for _, c := range cases {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		if c.body != "" {
			if err := os.WriteFile(path, []byte(c.body), 0o644); err != nil {
				t.Fatalf("%s: write: %v", c.name, err)
			}
		}
		if _, err := catalog.Load(path); err == nil {
			t.Fatalf("%s: Load should fail", c.name)
		}
	}
}

func TestDefault(t *testing.T) {
	ctx := context.Background()
	cat := catalog.Default()
	if len(cat.Items) != 12 {
		t.Fatalf("default items got=%d want=%d", len(cat.Items), 12)
	}
	if len(cat.Suggestions) != 6 {
		t.Fatalf("default suggestions got=%d want=%d", len(cat.Suggestions), 6)
	}

	inv := repository.NewInventoryRepository()
	sugg := repository.NewSuggestionRepository()
	if err := cat.Apply(ctx, inv, sugg); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	groups := inv.Categories(ctx)
	if len(groups) != 4 {
		t.Fatalf("default categories got=%d want=%d", len(groups), 4)
	}

	espresso, err := inv.Get(ctx, "A1")
	if err != nil {
		t.Fatalf("Get A1: %v", err)
	}
	if espresso.Price != 150 || espresso.Stock != 5 {
		t.Fatalf("A1 got=%+v want price=150 stock=5", espresso)
	}

	if got, ok := sugg.Get(ctx, "B2"); !ok || got != "D1" {
		t.Fatalf("B2 suggestion got=%q,%v want=%q,true", got, ok, "D1")
	}
}
