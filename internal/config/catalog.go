package config

import (
	"fmt"

	"mpbridge/internal/domain/entities"

	"github.com/spf13/viper"
)

// Catalog is the optional file of pre-configured products and plans.
//
// Entries are lists rather than maps because viper lower-cases map keys and
// product ids are case sensitive.
//
//	products:
//	  - id: pro
//	    title: Pro Plan
//	    unit_price: 1500
//	plans:
//	  - id: monthly
//	    reason: Monthly membership
//	    transaction_amount: 500
//	    frequency: 1
//	    frequency_type: months
type Catalog struct {
	Products []CatalogProduct `mapstructure:"products"`
	Plans    []CatalogPlan    `mapstructure:"plans"`
}

type CatalogProduct struct {
	ID          string  `mapstructure:"id"`
	Title       string  `mapstructure:"title"`
	UnitPrice   float64 `mapstructure:"unit_price"`
	CurrencyID  string  `mapstructure:"currency_id"`
	Description string  `mapstructure:"description"`
	PictureURL  string  `mapstructure:"picture_url"`
	CategoryID  string  `mapstructure:"category_id"`
}

type CatalogPlan struct {
	ID                string  `mapstructure:"id"`
	Reason            string  `mapstructure:"reason"`
	TransactionAmount float64 `mapstructure:"transaction_amount"`
	CurrencyID        string  `mapstructure:"currency_id"`
	Frequency         int     `mapstructure:"frequency"`
	FrequencyType     string  `mapstructure:"frequency_type"`
}

// LoadCatalog reads a YAML, JSON or TOML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var c Catalog
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	seen := map[string]bool{}
	for _, p := range c.Products {
		if p.ID == "" {
			return fmt.Errorf("product without id")
		}
		if seen["product:"+p.ID] {
			return fmt.Errorf("duplicate product %q", p.ID)
		}
		seen["product:"+p.ID] = true
	}
	for _, p := range c.Plans {
		if p.ID == "" {
			return fmt.Errorf("plan without id")
		}
		if seen["plan:"+p.ID] {
			return fmt.Errorf("duplicate plan %q", p.ID)
		}
		seen["plan:"+p.ID] = true
		if !entities.FrequencyType(p.FrequencyType).Valid() {
			return fmt.Errorf("plan %q: frequency_type must be days or months", p.ID)
		}
	}
	return nil
}

func (c *Catalog) ProductMap() map[string]entities.ProductConfig {
	out := make(map[string]entities.ProductConfig, len(c.Products))
	for _, p := range c.Products {
		out[p.ID] = entities.ProductConfig{
			Title:       p.Title,
			UnitPrice:   p.UnitPrice,
			CurrencyID:  p.CurrencyID,
			Description: p.Description,
			PictureURL:  p.PictureURL,
			CategoryID:  p.CategoryID,
		}
	}
	return out
}

func (c *Catalog) PlanMap() map[string]entities.PlanConfig {
	out := make(map[string]entities.PlanConfig, len(c.Plans))
	for _, p := range c.Plans {
		out[p.ID] = entities.PlanConfig{
			Reason:            p.Reason,
			TransactionAmount: p.TransactionAmount,
			CurrencyID:        p.CurrencyID,
			Frequency:         p.Frequency,
			FrequencyType:     entities.FrequencyType(p.FrequencyType),
		}
	}
	return out
}
