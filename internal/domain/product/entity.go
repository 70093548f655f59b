// internal/domain/product/entity.go
package product

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Price is a monetary amount in minor units (paise). Older product records
// carry prices as bare numbers, quoted numbers, or punctuation-laden strings
// ("1,299"); all of them decode into the one canonical representation.
type Price int64

// UnmarshalJSON accepts both numeric and string price encodings
func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*p = 0
		return nil
	}

	if s[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.Map(func(r rune) rune {
			if r == ',' || r == ' ' || r == '₹' {
				return -1
			}
			return r
		}, raw)
		if raw == "" {
			*p = 0
			return nil
		}
		// Some records carry fractional string amounts
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", string(data), err)
		}
		*p = Price(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid price %s: %w", string(data), err)
	}
	*p = Price(f)
	return nil
}

// Product represents a catalog product record in the resource store
type Product struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle,omitempty"`
	CurrentPrice  Price  `json:"currentPrice"`
	OriginalPrice Price  `json:"originalPrice,omitempty"`
	Discount      string `json:"discount,omitempty"`
	Image         string `json:"image,omitempty"`
	Category      string `json:"item,omitempty"`
	Rating        string `json:"rating,omitempty"`
}

// Validate checks the fields required to put a product on sale
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("product title is required")
	}
	if p.CurrentPrice <= 0 {
		return fmt.Errorf("product price must be positive")
	}
	if p.OriginalPrice != 0 && p.OriginalPrice < p.CurrentPrice {
		return fmt.Errorf("original price cannot be below current price")
	}
	return nil
}
