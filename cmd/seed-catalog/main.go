package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/luxdrop/storefront/internal/config"
	"github.com/luxdrop/storefront/internal/db"
	"github.com/luxdrop/storefront/internal/domain"
	"github.com/luxdrop/storefront/internal/repository/postgres"
)

func ptr(v float64) *float64 { return &v }

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Connect to database
	conn, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := db.RunMigrations(conn, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run migrations: %v\n", err)
		os.Exit(1)
	}

	repos := postgres.NewRepositories(conn, logger)
	ctx := context.Background()

	existing, err := repos.Product.Count(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to count products: %v\n", err)
		os.Exit(1)
	}
	if existing > 0 {
		fmt.Println("Catalog already seeded")
		return
	}

	categories := []domain.Category{
		{ID: "cat1", Name: "Moda Feminina", Slug: "moda-feminina", Image: "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?w=400", ProductCount: 12},
		{ID: "cat2", Name: "Moda Masculina", Slug: "moda-masculina", Image: "https://images.unsplash.com/photo-1617127365659-c47fa864d8bc?w=400", ProductCount: 8},
		{ID: "cat3", Name: "Acessórios", Slug: "acessorios", Image: "https://images.unsplash.com/photo-1523293182086-7651a899d37f?w=400", ProductCount: 15},
		{ID: "cat4", Name: "Beleza", Slug: "beleza", Image: "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=400", ProductCount: 10},
		{ID: "cat5", Name: "Electrónicos", Slug: "electronicos", Image: "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=400", ProductCount: 6},
		{ID: "cat6", Name: "Casa & Decoração", Slug: "casa-decoracao", Image: "https://images.unsplash.com/photo-1513694203232-719a280e022f?w=400", ProductCount: 9},
	}
	for i := range categories {
		if err := repos.Category.Create(ctx, &categories[i]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create category %s: %v\n", categories[i].Slug, err)
			os.Exit(1)
		}
	}

	now := time.Now().UTC()
	products := []domain.Product{
		{
			ID: "prod1", Name: "Relógio Luxury Gold Edition",
			Description: "Relógio de pulso elegante com acabamento em ouro, perfeito para ocasiões especiais. Design sofisticado e atemporal.",
			Price:       89.99, OriginalPrice: ptr(149.99), Category: "Acessórios",
			Images: []string{"https://images.unsplash.com/photo-1523170335258-f5ed11844a49?w=600", "https://images.unsplash.com/photo-1524592094714-0f0654e20314?w=600"},
			Stock:  50, Supplier: "aliexpress",
			Tags:   []string{"relógio", "luxo", "dourado", "elegante"},
			Rating: 4.8, ReviewsCount: 127, CreatedAt: now,
		},
		{
			ID: "prod2", Name: "Bolsa de Couro Premium",
			Description: "Bolsa de couro genuíno com design moderno e espaçoso. Ideal para o dia a dia com estilo.",
			Price:       119.99, OriginalPrice: ptr(199.99), Category: "Moda Feminina",
			Images: []string{"https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=600", "https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=600"},
			Stock:  30, Supplier: "shein",
			Tags:   []string{"bolsa", "couro", "feminino", "elegante"},
			Rating: 4.9, ReviewsCount: 203, CreatedAt: now,
		},
		{
			ID: "prod3", Name: "Óculos de Sol Aviador",
			Description: "Óculos de sol estilo aviador com proteção UV400. Design clássico que nunca sai de moda.",
			Price:       39.99, OriginalPrice: ptr(79.99), Category: "Acessórios",
			Images: []string{"https://images.unsplash.com/photo-1511499767150-a48a237f0083?w=600", "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=600"},
			Stock:  100, Supplier: "temu",
			Tags:   []string{"óculos", "sol", "aviador", "proteção"},
			Rating: 4.6, ReviewsCount: 89, CreatedAt: now,
		},
		{
			ID: "prod4", Name: "Vestido Elegante de Noite",
			Description: "Vestido longo elegante ideal para eventos formais. Tecido premium com caimento perfeito.",
			Price:       149.99, OriginalPrice: ptr(249.99), Category: "Moda Feminina",
			Images: []string{"https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=600", "https://images.unsplash.com/photo-1566174053879-31528523f8ae?w=600"},
			Stock:  25, Supplier: "shein",
			Tags:   []string{"vestido", "elegante", "noite", "festa"},
			Rating: 4.9, ReviewsCount: 156, CreatedAt: now,
		},
		{
			ID: "prod5", Name: "Perfume Luxo Unissexo 100ml",
			Description: "Fragrância sofisticada e duradoura. Notas de especiarias e madeiras nobres.",
			Price:       69.99, OriginalPrice: ptr(129.99), Category: "Beleza",
			Images: []string{"https://images.unsplash.com/photo-1541643600914-78b084683601?w=600", "https://images.unsplash.com/photo-1592945403244-b3fbafd7f539?w=600"},
			Stock:  60, Supplier: "aliexpress",
			Tags:   []string{"perfume", "fragrância", "luxo", "unissexo"},
			Rating: 4.7, ReviewsCount: 234, CreatedAt: now,
		},
		{
			ID: "prod6", Name: "Smartwatch Elite Pro",
			Description: "Smartwatch com monitorização de saúde, GPS e resistência à água. Perfeito para desportistas.",
			Price:       199.99, OriginalPrice: ptr(349.99), Category: "Electrónicos",
			Images: []string{"https://images.unsplash.com/photo-1579586337278-3befd40fd17a?w=600", "https://images.unsplash.com/photo-1434494878577-86c23bcb06b9?w=600"},
			Stock:  40, Supplier: "temu",
			Tags:   []string{"smartwatch", "tecnologia", "fitness", "saúde"},
			Rating: 4.8, ReviewsCount: 412, CreatedAt: now,
		},
		{
			ID: "prod7", Name: "Casaco de Pele Premium",
			Description: "Casaco luxuoso em pele sintética de alta qualidade. Quente e elegante para o inverno.",
			Price:       179.99, OriginalPrice: ptr(299.99), Category: "Moda Masculina",
			Images: []string{"https://images.unsplash.com/photo-1551028719-00167b16eac5?w=600", "https://images.unsplash.com/photo-1539533018447-63fcce2678e3?w=600"},
			Stock:  20, Supplier: "shein",
			Tags:   []string{"casaco", "inverno", "pele", "masculino"},
			Rating: 4.7, ReviewsCount: 98, CreatedAt: now,
		},
		{
			ID: "prod8", Name: "Conjunto de Velas Aromáticas Luxo",
			Description: "Set de 3 velas aromáticas premium com fragrâncias relaxantes. Perfeito para criar ambiente.",
			Price:       45.99, OriginalPrice: ptr(89.99), Category: "Casa & Decoração",
			Images: []string{"https://images.unsplash.com/photo-1602874801006-94c29bcc5eb0?w=600", "https://images.unsplash.com/photo-1603006905003-be475563bc59?w=600"},
			Stock:  75, Supplier: "aliexpress",
			Tags:   []string{"velas", "aromáticas", "decoração", "casa"},
			Rating: 4.9, ReviewsCount: 267, CreatedAt: now,
		},
	}
	for i := range products {
		if err := repos.Product.Create(ctx, &products[i]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create product %s: %v\n", products[i].ID, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Catalog seeded: %d products, %d categories\n", len(products), len(categories))
}
