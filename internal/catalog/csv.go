// Package catalog loads the product catalog from the products CSV, the same
// flat file the shop's data pipeline produces: one row per purchasable
// variant, with variants grouped under a parent product row and list fields
// (images, options, types) pipe-delimited.
package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/maitighar/kagaj/internal/domain"
)

// record is one CSV row. Validation mirrors the pipeline's schema check:
// a row missing a required field fails the whole load.
type record struct {
	ProductID       string `validate:"required"`
	ParentProductID string
	ProductName     string `validate:"required"`
	ProductURLSlug  string
	ProductType     string
	Description     string
	SKU             string `validate:"required"`
	Price           string `validate:"required,numeric"`
	DiscountPrice   string `validate:"omitempty,numeric"`
	Currency        string `validate:"omitempty,iso4217"`
	ProductImages   string
	ImageAltText    string
	VariantOptions  string
	Quantity        int    `validate:"gte=0"`
	RestockAt       int    `validate:"gte=0"`
}

// CSV is an in-memory catalog parsed from the products file.
type CSV struct {
	products []domain.Product
	bySlug   map[string]*domain.Product
	types    []string
}

var _ domain.Catalog = (*CSV)(nil)

// LoadCSV parses the catalog file at path.
func LoadCSV(path string) (*CSV, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a products CSV. Rows sharing a parent_product_id become the
// variants of that parent; a row without a parent is its own parent. Row
// order is preserved everywhere.
func Parse(r io.Reader) (*CSV, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}

	validate := validator.New()
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, domain.Invalid("catalog.load", fmt.Sprintf("row %d: %v", i+2, err))
		}
	}

	c := &CSV{bySlug: make(map[string]*domain.Product)}

	// First pass: create a product per parent row, keyed by parent ID.
	byParent := make(map[string]int)
	for _, rec := range records {
		if rec.parentID() != rec.ProductID {
			continue
		}

		c.products = append(c.products, rec.toProduct())
		byParent[rec.ProductID] = len(c.products) - 1
	}

	// Second pass: attach every row, parents included, as a variant.
	for _, rec := range records {
		idx, ok := byParent[rec.parentID()]
		if !ok {
			return nil, domain.Invalid("catalog.load", fmt.Sprintf("row for %q references missing parent %q", rec.SKU, rec.parentID()))
		}
		parent := &c.products[idx]

		variant, err := rec.toVariant(parent.Currency)
		if err != nil {
			return nil, err
		}
		parent.Variants = append(parent.Variants, variant)
	}

	seenTypes := make(map[string]bool)
	for i := range c.products {
		p := &c.products[i]
		c.bySlug[p.Slug] = p
		if p.ProductType != "" && !seenTypes[p.ProductType] {
			seenTypes[p.ProductType] = true
			c.types = append(c.types, p.ProductType)
		}
	}

	// Variant slugs resolve to the parent product: navigating to a variant's
	// page lands on the parent with that variant preselected. Parent slugs
	// win when the two collide.
	for i := range c.products {
		p := &c.products[i]
		for _, v := range p.Variants {
			if _, taken := c.bySlug[v.Slug]; !taken {
				c.bySlug[v.Slug] = p
			}
		}
	}
	sort.Strings(c.types)

	return c, nil
}

// Products returns the parsed products in file order, for bulk import.
func (c *CSV) Products() []domain.Product {
	return c.products
}

// ListProducts returns the catalog's products in file order.
func (c *CSV) ListProducts(_ context.Context) ([]domain.ProductListItem, error) {
	items := make([]domain.ProductListItem, 0, len(c.products))
	for _, p := range c.products {
		item := domain.ProductListItem{
			ID:          p.ID,
			Name:        p.Name,
			Slug:        p.Slug,
			ProductType: p.ProductType,
			Stock:       p.Stock,
		}
		if len(p.Images) > 0 {
			item.PrimaryURL = p.Images[0].URL
		}
		if len(p.Variants) > 0 {
			item.FromPrice = p.Variants[0].Price
		}
		items = append(items, item)
	}
	return items, nil
}

// GetProductDetail returns the product owning the page slug, which may be
// the product's own page or one of its variants' pages.
func (c *CSV) GetProductDetail(_ context.Context, slug string) (*domain.Product, error) {
	p, ok := c.bySlug[slug]
	if !ok {
		return nil, domain.NotFound("catalog.get", "product", slug)
	}
	return p, nil
}

// ListProductTypes returns the distinct product types, sorted.
func (c *CSV) ListProductTypes(_ context.Context) ([]string, error) {
	return c.types, nil
}

func (r record) parentID() string {
	if r.ParentProductID != "" {
		return r.ParentProductID
	}
	return r.ProductID
}

func (r record) pageSlug() string {
	if r.ProductURLSlug != "" {
		return Slugify(r.ProductURLSlug)
	}
	return Slugify(r.ProductName)
}

func (r record) stockStatus() domain.StockStatus {
	switch {
	case r.Quantity == 0:
		return domain.StockOutOfStock
	case r.RestockAt > 0 && r.Quantity <= r.RestockAt:
		return domain.StockLowStock
	default:
		return domain.StockInStock
	}
}

func (r record) toProduct() domain.Product {
	p := domain.Product{
		ID:          r.ProductID,
		Name:        r.ProductName,
		Slug:        r.pageSlug(),
		Description: r.Description,
		Currency:    r.Currency,
		Stock:       r.stockStatus(),
	}

	if types := splitPipe(r.ProductType); len(types) > 0 {
		p.ProductType = types[0]
	} else {
		p.ProductType = "uncategorized"
	}

	for i, url := range splitPipe(r.ProductImages) {
		p.Images = append(p.Images, domain.ProductImage{
			URL:       url,
			AltText:   r.ImageAltText,
			SortOrder: i,
		})
	}

	return p
}

func (r record) toVariant(currency string) (domain.Variant, error) {
	price, err := domain.ParseMoney(r.Price, currency)
	if err != nil {
		return domain.Variant{}, domain.Invalid("catalog.load", fmt.Sprintf("variant %q: bad price %q", r.SKU, r.Price))
	}

	v := domain.Variant{
		SKU:   r.SKU,
		Name:  strings.Join(splitPipe(r.VariantOptions), " | "),
		Price: price,
		Slug:  r.pageSlug(),
	}
	if v.Name == "" {
		v.Name = r.ProductName
	}

	if r.DiscountPrice != "" {
		discount, err := domain.ParseMoney(r.DiscountPrice, currency)
		if err != nil {
			return domain.Variant{}, domain.Invalid("catalog.load", fmt.Sprintf("variant %q: bad discount price %q", r.SKU, r.DiscountPrice))
		}
		v.DiscountPrice = discount
	}

	return v, nil
}

func splitPipe(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, "|")
	out := parts[:0]
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// readRecords maps the CSV header to fields, tolerating column reordering
// the way the pipeline's spreadsheet exports tend to shuffle them.
func readRecords(r io.Reader) ([]record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domain.Invalid("catalog.load", "catalog file is empty")
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog row: %w", err)
		}

		rec := record{
			ProductID:       field(row, "product_id"),
			ParentProductID: field(row, "parent_product_id"),
			ProductName:     field(row, "product_name"),
			ProductURLSlug:  field(row, "product_url_slug"),
			ProductType:     field(row, "product_type"),
			Description:     field(row, "description"),
			SKU:             field(row, "sku"),
			Price:           field(row, "price"),
			DiscountPrice:   field(row, "discount_price"),
			Currency:        strings.ToUpper(field(row, "currency")),
			ProductImages:   field(row, "product_images"),
			ImageAltText:    field(row, "image_alt_text"),
			VariantOptions:  field(row, "variant_options"),
		}

		if qty := field(row, "quantity"); qty != "" {
			rec.Quantity, err = strconv.Atoi(qty)
			if err != nil {
				return nil, domain.Invalid("catalog.load", fmt.Sprintf("variant %q: bad quantity %q", rec.SKU, qty))
			}
		}
		if restock := field(row, "restock_threshold"); restock != "" {
			rec.RestockAt, err = strconv.Atoi(restock)
			if err != nil {
				return nil, domain.Invalid("catalog.load", fmt.Sprintf("variant %q: bad restock threshold %q", rec.SKU, restock))
			}
		}

		records = append(records, rec)
	}

	return records, nil
}
