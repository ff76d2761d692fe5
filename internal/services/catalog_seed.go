package services

import (
	"storefront/internal/models"

	"github.com/shopspring/decimal"
)

// SampleCatalog is the starter collection inserted by the seed command.
func SampleCatalog() []models.ProductFields {
	inStock := true
	p := func(name, description string, price int64, category, image string, sizes, colors []string) models.ProductFields {
		amount := decimal.NewFromInt(price)
		return models.ProductFields{
			Name:        name,
			Description: description,
			Price:       &amount,
			Category:    category,
			Image:       image,
			Sizes:       sizes,
			Colors:      colors,
			InStock:     &inStock,
		}
	}
	menSizes := []string{"S", "M", "L", "XL", "XXL"}
	womenSizes := []string{"S", "M", "L", "XL"}

	return []models.ProductFields{
		p("Premium Cotton Kurta", "Elegant handcrafted cotton kurta with intricate embroidery", 2499, "men",
			"/images/premium-cotton-kurta.jpg", menSizes, []string{"White", "Cream", "Blue"}),
		p("Designer Lehenga Set", "Royal designer lehenga with heavy work and dupatta", 8999, "women",
			"/images/designer-lehenga-set.jpg", womenSizes, []string{"Red", "Pink", "Maroon", "Gold"}),
		p("Silk Saree Collection", "Pure silk saree with traditional border and pallu", 5499, "women",
			"/images/silk-saree-collection.jpg", []string{"Free Size"}, []string{"Green", "Purple", "Orange", "Red"}),
		p("Sherwani Set", "Luxurious sherwani with dupatta and churidar", 12999, "men",
			"/images/sherwani-set.jpg", menSizes, []string{"Ivory", "Gold", "Maroon"}),
		p("Anarkali Suit", "Beautiful anarkali suit with embroidered work", 3999, "women",
			"/images/anarkali-suit.jpg", womenSizes, []string{"Pink", "Blue", "Green"}),
		p("Pathani Suit", "Comfortable pathani suit for daily wear", 1899, "men",
			"/images/pathani-suit.jpg", menSizes, []string{"White", "Black", "Grey"}),
		p("Palazzo Suit Set", "Trendy palazzo suit with dupatta", 2799, "women",
			"/images/palazzo-suit-set.jpg", womenSizes, []string{"Yellow", "Pink", "Mint"}),
		p("Nehru Jacket", "Stylish nehru jacket with button detailing", 3499, "men",
			"/images/nehru-jacket.jpg", menSizes, []string{"Navy", "Black", "Wine"}),
	}
}
