// Command seedgen writes a synthetic products CSV for development and demos.
// The output matches the catalog schema: one row per purchasable variant,
// variants grouped under their parent row, list fields pipe-delimited.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/maitighar/kagaj/internal/catalog"
)

var productTypes = []struct {
	name string
	code string
}{
	{"notebooks", "nb"},
	{"greeting_cards", "gc"},
	{"paper_bags", "bag"},
	{"photo_frames", "pf"},
	{"lampshades", "ls"},
	{"wrapping_papers", "wp"},
	{"boxes", "bx"},
	{"jewelry_boxes", "jb"},
	{"pencils", "ps"},
}

var (
	sizes    = []string{"a5", "a4", "small", "medium", "large"}
	colors   = []string{"black", "white", "brown", "beige", "blue", "green"}
	patterns = []string{"floral", "geometric", "plain", "striped"}
)

var header = []string{
	"product_id", "parent_product_id", "product_name", "product_url_slug",
	"product_type", "description", "sku", "price", "discount_price",
	"currency", "product_images", "image_alt_text", "variant_options",
	"quantity", "restock_threshold",
}

func main() {
	out := flag.String("out", "data/products.csv", "output CSV path")
	count := flag.Int("count", 40, "number of parent products")
	seed := flag.Uint64("seed", 0, "faker seed, 0 for random")
	flag.Parse()

	faker := gofakeit.New(*seed)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("failed to create %s: %v", *out, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		log.Fatalf("failed to write header: %v", err)
	}

	rows := 0
	for i := 0; i < *count; i++ {
		rows += writeProduct(w, faker, i)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("failed to write catalog: %v", err)
	}

	fmt.Printf("wrote %d rows to %s\n", rows, *out)
}

// writeProduct emits a parent row and its variant rows, returning the row count.
func writeProduct(w *csv.Writer, faker *gofakeit.Faker, index int) int {
	pt := productTypes[faker.Number(0, len(productTypes)-1)]
	ptype, code := pt.name, pt.code

	name := fmt.Sprintf("%s %s %s",
		titleCase(faker.AdjectiveDescriptive()),
		titleCase(faker.NounConcrete()),
		titleCase(strings.TrimSuffix(ptype, "s")))
	parentID := fmt.Sprintf("%s-%03d", code, index+1)
	slug := catalog.Slugify(name)

	images := make([]string, faker.Number(1, 4))
	for i := range images {
		images[i] = fmt.Sprintf("/static/images/products/%s-%d.jpg", slug, i+1)
	}

	basePrice := float64(faker.Number(200, 5000))

	rows := [][]string{parentRow(faker, parentID, name, slug, ptype, code, images, basePrice)}

	// A minority of products are single-variant; the rest get size/color or
	// size/pattern permutations, each with its own SKU, price, and page.
	if faker.Number(1, 10) > 3 {
		variantCount := faker.Number(1, 3)
		for v := 0; v < variantCount; v++ {
			rows = append(rows, variantRow(faker, parentID, name, ptype, code, images, basePrice, v))
		}
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			log.Fatalf("failed to write row: %v", err)
		}
	}
	return len(rows)
}

func parentRow(faker *gofakeit.Faker, id, name, slug, ptype, code string, images []string, price float64) []string {
	return buildRow(faker, id, "", name, slug, ptype, code+"-"+slug, "", images, price)
}

func variantRow(faker *gofakeit.Faker, parentID, name, ptype, code string, images []string, base float64, n int) []string {
	options := []string{faker.RandomString(sizes)}
	if faker.Bool() {
		options = append(options, faker.RandomString(colors))
	} else {
		options = append(options, faker.RandomString(patterns))
	}

	variantName := fmt.Sprintf("%s %s", name, strings.Join(options, " "))
	slug := catalog.Slugify(variantName)
	sku := fmt.Sprintf("%s-%s-%02d", code, catalog.Slugify(strings.Join(options, "-")), n+1)
	price := base * (1 + float64(n)*0.15)

	row := buildRow(faker, fmt.Sprintf("%s-v%d", parentID, n+1), parentID, variantName, slug, ptype, sku, strings.Join(options, " | "), images, price)
	return row
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func buildRow(faker *gofakeit.Faker, id, parentID, name, slug, ptype, sku, options string, images []string, price float64) []string {
	discount := ""
	if faker.Number(1, 100) <= 20 {
		discount = strconv.FormatFloat(price*0.85, 'f', 2, 64)
	}

	quantity := faker.Number(0, 60)
	restock := 0
	if faker.Number(1, 100) <= 70 {
		restock = faker.Number(3, 10)
	}

	return []string{
		id,
		parentID,
		name,
		slug,
		ptype,
		faker.Sentence(12),
		sku,
		strconv.FormatFloat(price, 'f', 2, 64),
		discount,
		"NPR",
		strings.Join(images, "|"),
		name,
		options,
		strconv.Itoa(quantity),
		strconv.Itoa(restock),
	}
}
