// Package catalog loads the machine's item catalog and cross-sell pairs,
// either from a yaml file or from the built-in demo catalog.
package catalog

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"vending-system/internal/model"
	"vending-system/internal/repository"
	"vending-system/pkg/money"
)

// Catalog is the seed data for one machine: priced, stock-limited items and
// the suggestion pairs shown after a purchase.
type Catalog struct {
	Items       []ItemSpec       `yaml:"items"`
	Suggestions []SuggestionSpec `yaml:"suggestions"`
}

// ItemSpec describes one catalog item as written in the seed file. Price is
// a money string ("1.50", "£2.00") parsed with the machine's own grammar.
type ItemSpec struct {
	Code     string `yaml:"code"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Price    string `yaml:"price"`
	Stock    int    `yaml:"stock"`
}

// SuggestionSpec maps a purchased code to a cross-sell code
type SuggestionSpec struct {
	From    string `yaml:"from"`
	Suggest string `yaml:"suggest"`
}

// Load reads and validates a yaml catalog file
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog file")
	}
	var cat Catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return nil, errors.Wrap(err, "parse catalog file")
	}
	if err := cat.validate(); err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	return &cat, nil
}

// validate rejects bad seed data at the one boundary it can enter. Item
// prices must parse and be strictly positive; stock must be non-negative.
func (c *Catalog) validate() error {
	if len(c.Items) == 0 {
		return errors.New("catalog has no items")
	}
	for i, it := range c.Items {
		if strings.TrimSpace(it.Code) == "" {
			return errors.Errorf("item %d: code is required", i)
		}
		if strings.TrimSpace(it.Name) == "" {
			return errors.Errorf("item %q: name is required", it.Code)
		}
		if strings.TrimSpace(it.Category) == "" {
			return errors.Errorf("item %q: category is required", it.Code)
		}
		price, err := money.Parse(it.Price)
		if err != nil {
			return errors.Wrapf(err, "item %q: price %q", it.Code, it.Price)
		}
		if price <= 0 {
			return errors.Errorf("item %q: price must be positive", it.Code)
		}
		if it.Stock < 0 {
			return errors.Errorf("item %q: stock must not be negative", it.Code)
		}
	}
	for i, sp := range c.Suggestions {
		if strings.TrimSpace(sp.From) == "" || strings.TrimSpace(sp.Suggest) == "" {
			return errors.Errorf("suggestion %d: from and suggest are required", i)
		}
	}
	return nil
}

// Apply seeds the repositories from the catalog. Codes are folded to upper
// case here, the insertion boundary, so lookups never case-fold ad hoc.
func (c *Catalog) Apply(ctx context.Context, inv repository.InventoryRepository, sugg repository.SuggestionRepository) error {
	for _, it := range c.Items {
		price, err := money.Parse(it.Price)
		if err != nil {
			return errors.Wrapf(err, "item %q: price %q", it.Code, it.Price)
		}
		item := model.Item{
			Code:     normalizeCode(it.Code),
			Name:     strings.TrimSpace(it.Name),
			Category: strings.TrimSpace(it.Category),
			Price:    price,
			Stock:    it.Stock,
		}
		if err := inv.AddItem(ctx, item); err != nil {
			return errors.Wrapf(err, "add item %q", item.Code)
		}
	}
	for _, sp := range c.Suggestions {
		sugg.Set(ctx, normalizeCode(sp.From), normalizeCode(sp.Suggest))
	}
	return nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Default returns the demo catalog the machine ships with: 12 items across
// 4 categories and 6 suggestion pairs.
func Default() *Catalog {
	return &Catalog{
		Items: []ItemSpec{
			{Code: "A1", Name: "Espresso", Category: "Hot Drinks", Price: "1.50", Stock: 5},
			{Code: "A2", Name: "Tea", Category: "Hot Drinks", Price: "1.20", Stock: 8},
			{Code: "A3", Name: "Latte", Category: "Hot Drinks", Price: "1.90", Stock: 4},
			{Code: "B1", Name: "Cola", Category: "Cold Drinks", Price: "1.80", Stock: 6},
			{Code: "B2", Name: "Orange Juice", Category: "Cold Drinks", Price: "2.00", Stock: 4},
			{Code: "B3", Name: "Water", Category: "Cold Drinks", Price: "1.00", Stock: 9},
			{Code: "C1", Name: "Crisps", Category: "Snacks", Price: "1.30", Stock: 10},
			{Code: "C2", Name: "Biscuits", Category: "Snacks", Price: "1.40", Stock: 7},
			{Code: "C3", Name: "Nuts", Category: "Snacks", Price: "1.50", Stock: 5},
			{Code: "D1", Name: "Chocolate Bar", Category: "Chocolate", Price: "1.60", Stock: 5},
			{Code: "D2", Name: "Dark Choc", Category: "Chocolate", Price: "1.70", Stock: 3},
			{Code: "D3", Name: "Milk Choc", Category: "Chocolate", Price: "1.50", Stock: 6},
		},
		Suggestions: []SuggestionSpec{
			{From: "A1", Suggest: "C2"},
			{From: "A2", Suggest: "C2"},
			{From: "A3", Suggest: "C3"},
			{From: "B1", Suggest: "C1"},
			{From: "B2", Suggest: "D1"},
			{From: "B3", Suggest: "C1"},
		},
	}
}
