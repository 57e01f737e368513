package catalog

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
)

// Catalog is a read-only snapshot of products, in file order.
type Catalog struct {
	products []domain.Product
	byID     map[uuid.UUID]int
}

type catalogFile struct {
	Products []productRecord `toml:"products"`
}

type productRecord struct {
	ID          string   `toml:"id"`
	Name        string   `toml:"name"`
	Category    string   `toml:"category"`
	Subcategory string   `toml:"subcategory"`
	Price       string   `toml:"price"`
	SalePrice   string   `toml:"sale_price"`
	OnSale      bool     `toml:"on_sale"`
	Sizes       []string `toml:"sizes"`
	Colors      []string `toml:"colors"`
	Stock       int      `toml:"stock"`
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("toml.Unmarshal: %w", err)
	}

	c := &Catalog{byID: make(map[uuid.UUID]int, len(file.Products))}

	for i, record := range file.Products {
		product, err := record.toDomain()
		if err != nil {
			return nil, fmt.Errorf("product[%d]: %w", i, err)
		}
		if _, ok := c.byID[product.ID]; ok {
			return nil, fmt.Errorf("product[%d]: duplicate id %s", i, product.ID)
		}

		c.byID[product.ID] = len(c.products)
		c.products = append(c.products, product)
	}

	return c, nil
}

func (r productRecord) toDomain() (domain.Product, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("id[%s] is not valid: %w", r.ID, err)
	}
	if strings.TrimSpace(r.Name) == "" {
		return domain.Product{}, fmt.Errorf("name is empty")
	}

	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("price[%s] is not valid: %w", r.Price, err)
	}
	if price.IsNegative() {
		return domain.Product{}, fmt.Errorf("price[%s] is negative", r.Price)
	}

	var salePrice *decimal.Decimal
	if r.SalePrice != "" {
		sp, err := decimal.NewFromString(r.SalePrice)
		if err != nil {
			return domain.Product{}, fmt.Errorf("sale_price[%s] is not valid: %w", r.SalePrice, err)
		}
		if sp.IsNegative() {
			return domain.Product{}, fmt.Errorf("sale_price[%s] is negative", r.SalePrice)
		}
		salePrice = &sp
	}

	if r.Stock < 0 {
		return domain.Product{}, fmt.Errorf("stock %d is negative", r.Stock)
	}

	return domain.Product{
		ID:          id,
		Name:        r.Name,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Price:       price,
		SalePrice:   salePrice,
		OnSale:      r.OnSale,
		Sizes:       r.Sizes,
		Colors:      r.Colors,
		Stock:       r.Stock,
	}, nil
}

func (c *Catalog) Get(id uuid.UUID) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// List filters by category and subcategory; an empty filter matches everything.
func (c *Catalog) List(category, subcategory string) []domain.Product {
	return slices.DeleteFunc(slices.Clone(c.products), func(p domain.Product) bool {
		if category != "" && !strings.EqualFold(p.Category, category) {
			return true
		}
		return subcategory != "" && !strings.EqualFold(p.Subcategory, subcategory)
	})
}
