// Package postgres implements the catalog over PostgreSQL, for shops whose
// product data has outgrown the flat CSV.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maitighar/kagaj/internal/domain"
	"github.com/shopspring/decimal"
)

// Catalog is a PostgreSQL-backed product catalog.
type Catalog struct {
	pool *pgxpool.Pool
}

// Compile-time check that Catalog implements domain.Catalog.
var _ domain.Catalog = (*Catalog)(nil)

// NewCatalog creates a catalog over the given connection pool.
func NewCatalog(pool *pgxpool.Pool) *Catalog {
	return &Catalog{pool: pool}
}

// ListProducts returns all products with their primary image and lead price.
func (c *Catalog) ListProducts(ctx context.Context) ([]domain.ProductListItem, error) {
	rows, err := c.pool.Query(ctx, `
		SELECT p.id, p.name, p.slug, p.product_type, p.stock_status, p.currency,
		       (SELECT i.url FROM product_images i
		         WHERE i.product_id = p.id ORDER BY i.sort_order LIMIT 1),
		       (SELECT v.price FROM product_variants v
		         WHERE v.product_id = p.id ORDER BY v.sort_order, v.sku LIMIT 1)
		  FROM products p
		 ORDER BY p.sort_order, p.created_at`)
	if err != nil {
		return nil, domain.Internal(err, "catalog.list", "failed to list products")
	}
	defer rows.Close()

	var items []domain.ProductListItem
	for rows.Next() {
		var (
			item       domain.ProductListItem
			stock      string
			currency   string
			primaryURL pgtype.Text
			price      pgtype.Numeric
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.Slug, &item.ProductType,
			&stock, &currency, &primaryURL, &price); err != nil {
			return nil, domain.Internal(err, "catalog.list", "failed to scan product")
		}

		item.Stock = domain.StockStatus(stock)
		item.PrimaryURL = primaryURL.String
		if price.Valid {
			money, err := numericToMoney(price, currency)
			if err != nil {
				return nil, err
			}
			item.FromPrice = money
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "catalog.list", "failed to read products")
	}

	return items, nil
}

// GetProductDetail returns the full product for a page slug.
func (c *Catalog) GetProductDetail(ctx context.Context, slug string) (*domain.Product, error) {
	var (
		p     domain.Product
		stock string
	)
	// A slug names either a product page or one of its variant pages; a
	// variant slug resolves to the parent product. Parent slugs win when
	// both match.
	err := c.pool.QueryRow(ctx, `
		SELECT p.id, p.name, p.slug, p.product_type, p.description, p.currency, p.stock_status
		  FROM products p
		 WHERE p.slug = $1
		    OR EXISTS (SELECT 1 FROM product_variants v
		                WHERE v.product_id = p.id AND v.slug = $1)
		 ORDER BY (p.slug = $1) DESC
		 LIMIT 1`, slug).
		Scan(&p.ID, &p.Name, &p.Slug, &p.ProductType, &p.Description, &p.Currency, &stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound("catalog.get", "product", slug)
	}
	if err != nil {
		return nil, domain.Internal(err, "catalog.get", "failed to get product")
	}
	p.Stock = domain.StockStatus(stock)

	if p.Images, err = c.productImages(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Variants, err = c.productVariants(ctx, p.ID, p.Currency); err != nil {
		return nil, err
	}

	return &p, nil
}

// ListProductTypes returns the distinct product types, sorted.
func (c *Catalog) ListProductTypes(ctx context.Context) ([]string, error) {
	rows, err := c.pool.Query(ctx,
		`SELECT DISTINCT product_type FROM products ORDER BY product_type`)
	if err != nil {
		return nil, domain.Internal(err, "catalog.types", "failed to list product types")
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, domain.Internal(err, "catalog.types", "failed to scan product type")
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "catalog.types", "failed to read product types")
	}

	return types, nil
}

// Import inserts products with their variants and images in one transaction.
// Used by the CSV import command and the test fixtures.
func (c *Catalog) Import(ctx context.Context, products []domain.Product) error {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback(ctx)

	for pos, p := range products {
		if _, err := tx.Exec(ctx, `
			INSERT INTO products (id, name, slug, product_type, description, currency, stock_status, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			p.ID, p.Name, p.Slug, p.ProductType, p.Description, p.Currency, string(p.Stock), pos); err != nil {
			return fmt.Errorf("failed to insert product %q: %w", p.Slug, err)
		}

		for i, v := range p.Variants {
			var discount *decimal.Decimal
			if !v.DiscountPrice.IsZero() {
				discount = &v.DiscountPrice.Amount
			}
			if _, err := tx.Exec(ctx, `
				INSERT INTO product_variants (sku, product_id, name, price, discount_price, slug, sort_order)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				v.SKU, p.ID, v.Name, v.Price.Amount, discount, v.Slug, i); err != nil {
				return fmt.Errorf("failed to insert variant %q: %w", v.SKU, err)
			}
		}

		for _, img := range p.Images {
			if _, err := tx.Exec(ctx, `
				INSERT INTO product_images (product_id, url, alt_text, sort_order)
				VALUES ($1, $2, $3, $4)`,
				p.ID, img.URL, img.AltText, img.SortOrder); err != nil {
				return fmt.Errorf("failed to insert image for %q: %w", p.Slug, err)
			}
		}
	}

	return tx.Commit(ctx)
}

func (c *Catalog) productImages(ctx context.Context, productID string) ([]domain.ProductImage, error) {
	rows, err := c.pool.Query(ctx, `
		SELECT url, alt_text, sort_order FROM product_images
		 WHERE product_id = $1 ORDER BY sort_order`, productID)
	if err != nil {
		return nil, domain.Internal(err, "catalog.get", "failed to list product images")
	}
	defer rows.Close()

	var images []domain.ProductImage
	for rows.Next() {
		var img domain.ProductImage
		if err := rows.Scan(&img.URL, &img.AltText, &img.SortOrder); err != nil {
			return nil, domain.Internal(err, "catalog.get", "failed to scan product image")
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (c *Catalog) productVariants(ctx context.Context, productID, currency string) ([]domain.Variant, error) {
	rows, err := c.pool.Query(ctx, `
		SELECT sku, name, price, discount_price, slug FROM product_variants
		 WHERE product_id = $1 ORDER BY sort_order, sku`, productID)
	if err != nil {
		return nil, domain.Internal(err, "catalog.get", "failed to list product variants")
	}
	defer rows.Close()

	var variants []domain.Variant
	for rows.Next() {
		var (
			v        domain.Variant
			price    pgtype.Numeric
			discount pgtype.Numeric
		)
		if err := rows.Scan(&v.SKU, &v.Name, &price, &discount, &v.Slug); err != nil {
			return nil, domain.Internal(err, "catalog.get", "failed to scan product variant")
		}

		if v.Price, err = numericToMoney(price, currency); err != nil {
			return nil, err
		}
		if discount.Valid {
			if v.DiscountPrice, err = numericToMoney(discount, currency); err != nil {
				return nil, err
			}
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}

// numericToMoney converts a scanned NUMERIC into domain money.
func numericToMoney(n pgtype.Numeric, currency string) (domain.Money, error) {
	if !n.Valid || n.NaN {
		return domain.Money{}, domain.Invalid("catalog.scan", "price is not a number")
	}

	amount := decimal.NewFromBigInt(n.Int, n.Exp)
	return domain.ParseMoney(amount.String(), currency)
}
