package catalog

import "shophub_back_end/internal/models"

var products = []models.Product{
	// Électronique
	{
		ID:            "1",
		Name:          "Wireless Noise-Canceling Headphones",
		Slug:          "wireless-noise-canceling-headphones",
		Description:   "Premium wireless headphones with active noise cancellation, 30-hour battery life, and studio-quality sound. Perfect for music lovers and professionals.",
		Price:         299.99,
		OriginalPrice: 399.99,
		Discount:      25,
		Category:      models.CategoryElectronics,
		Images: []string{
			"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800&q=80",
			"https://images.unsplash.com/photo-1484704849700-f032a568e944?w=800&q=80",
		},
		Variants: []models.ProductVariant{
			{ID: "v1", Type: "color", Name: "Color", Value: "Black", Available: true},
			{ID: "v2", Type: "color", Name: "Color", Value: "Silver", Available: true},
			{ID: "v3", Type: "color", Name: "Color", Value: "Blue", Available: false},
		},
		Stock:    45,
		InStock:  true,
		Featured: true,
		Rating:   4.8,
		Reviews:  234,
	},
	{
		ID:          "2",
		Name:        "Smart Watch Pro",
		Slug:        "smart-watch-pro",
		Description: "Advanced fitness tracking, heart rate monitoring, GPS, and 7-day battery life. Stay connected on the go.",
		Price:       349.99,
		Category:    models.CategoryElectronics,
		Images: []string{
			"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800&q=80",
		},
		Variants: []models.ProductVariant{
			{ID: "v4", Type: "color", Name: "Color", Value: "Space Gray", Available: true},
			{ID: "v5", Type: "color", Name: "Color", Value: "Rose Gold", Available: true},
		},
		Stock:    28,
		InStock:  true,
		Featured: true,
		Rating:   4.6,
		Reviews:  156,
	},
	{
		ID:            "3",
		Name:          "Portable Bluetooth Speaker",
		Slug:          "portable-bluetooth-speaker",
		Description:   "Waterproof portable speaker with 360° sound, 24-hour battery, and deep bass. Perfect for outdoor adventures.",
		Price:         89.99,
		OriginalPrice: 129.99,
		Discount:      31,
		Category:      models.CategoryElectronics,
		Images: []string{
			"https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=800&q=80",
		},
		Stock:   67,
		InStock: true,
		Rating:  4.5,
		Reviews: 89,
	},
	{
		ID:          "4",
		Name:        "4K Wireless Security Camera",
		Slug:        "4k-wireless-security-camera",
		Description: "Crystal-clear 4K video, night vision, motion detection, and cloud storage. Secure your home with ease.",
		Price:       159.99,
		Category:    models.CategoryElectronics,
		Images: []string{
			"https://images.unsplash.com/photo-1557324232-b8917d3c3dcb?w=800&q=80",
		},
		Stock:   34,
		InStock: true,
		Rating:  4.7,
		Reviews: 124,
	},
	{
		ID:          "5",
		Name:        "Wireless Charging Pad",
		Slug:        "wireless-charging-pad",
		Description: "Fast wireless charging for all compatible devices. Sleek design with LED indicator and overcharge protection.",
		Price:       39.99,
		Category:    models.CategoryElectronics,
		Images: []string{
			"https://images.unsplash.com/photo-1591290619762-c588dd1e8cb1?w=800&q=80",
		},
		Stock:   120,
		InStock: true,
		Rating:  4.4,
		Reviews: 67,
	},

	// Mode
	{
		ID:            "6",
		Name:          "Classic Leather Jacket",
		Slug:          "classic-leather-jacket",
		Description:   "Premium genuine leather jacket with modern fit. Timeless style that goes with everything.",
		Price:         289.99,
		OriginalPrice: 450.00,
		Discount:      36,
		Category:      models.CategoryFashion,
		Images: []string{
			"https://images.unsplash.com/photo-1551028719-00167b16eac5?w=800&q=80",
		},
		Variants: []models.ProductVariant{
			{ID: "v6", Type: "size", Name: "Size", Value: "S", Available: true},
			{ID: "v7", Type: "size", Name: "Size", Value: "M", Available: true},
			{ID: "v8", Type: "size", Name: "Size", Value: "L", Available: true},
			{ID: "v9", Type: "size", Name: "Size", Value: "XL", Available: false},
		},
		Stock:    23,
		InStock:  true,
		Featured: true,
		Rating:   4.9,
		Reviews:  178,
	},
	{
		ID:          "7",
		Name:        "Designer Sunglasses",
		Slug:        "designer-sunglasses",
		Description: "UV protection with polarized lenses. Elegant frame design for any occasion.",
		Price:       159.99,
		Category:    models.CategoryFashion,
		Images: []string{
			"https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=800&q=80",
		},
		Stock:   56,
		InStock: true,
		Rating:  4.6,
		Reviews: 92,
	},
	{
		ID:          "8",
		Name:        "Slim Fit Denim Jeans",
		Slug:        "slim-fit-denim-jeans",
		Description: "Comfortable stretch denim with modern slim fit. Perfect everyday jeans.",
		Price:       79.99,
		Category:    models.CategoryFashion,
		Images: []string{
			"https://images.unsplash.com/photo-1542272604-787c3835535d?w=800&q=80",
		},
		Variants: []models.ProductVariant{
			{ID: "v10", Type: "size", Name: "Size", Value: "28", Available: true},
			{ID: "v11", Type: "size", Name: "Size", Value: "30", Available: true},
			{ID: "v12", Type: "size", Name: "Size", Value: "32", Available: true},
			{ID: "v13", Type: "size", Name: "Size", Value: "34", Available: true},
		},
		Stock:   89,
		InStock: true,
		Rating:  4.5,
		Reviews: 145,
	},
	{
		ID:            "9",
		Name:          "Luxury Wrist Watch",
		Slug:          "luxury-wrist-watch",
		Description:   "Automatic movement, sapphire crystal, water-resistant. Handcrafted excellence.",
		Price:         549.99,
		OriginalPrice: 799.99,
		Discount:      31,
		Category:      models.CategoryFashion,
		Images: []string{
			"https://images.unsplash.com/photo-1524592094714-0f0654e20314?w=800&q=80",
		},
		Stock:    12,
		InStock:  true,
		Featured: true,
		Rating:   5.0,
		Reviews:  67,
	},
	{
		ID:          "10",
		Name:        "Canvas Sneakers",
		Slug:        "canvas-sneakers",
		Description: "Comfortable all-day wear with classic design. Available in multiple colors.",
		Price:       59.99,
		Category:    models.CategoryFashion,
		Images: []string{
			"https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?w=800&q=80",
		},
		Variants: []models.ProductVariant{
			{ID: "v14", Type: "size", Name: "Size", Value: "8", Available: true},
			{ID: "v15", Type: "size", Name: "Size", Value: "9", Available: true},
			{ID: "v16", Type: "size", Name: "Size", Value: "10", Available: true},
			{ID: "v17", Type: "size", Name: "Size", Value: "11", Available: false},
		},
		Stock:   78,
		InStock: true,
		Rating:  4.3,
		Reviews: 201,
	},

	// Maison
	{
		ID:          "11",
		Name:        "Minimalist Desk Lamp",
		Slug:        "minimalist-desk-lamp",
		Description: "LED desk lamp with adjustable brightness and color temperature. Modern design for any workspace.",
		Price:       69.99,
		Category:    models.CategoryHomeLiving,
		Images: []string{
			"https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=800&q=80",
		},
		Stock:   45,
		InStock: true,
		Rating:  4.7,
		Reviews: 112,
	},
	{
		ID:            "12",
		Name:          "Aromatherapy Diffuser",
		Slug:          "aromatherapy-diffuser",
		Description:   "Ultrasonic essential oil diffuser with LED mood lighting. Create a relaxing atmosphere.",
		Price:         44.99,
		OriginalPrice: 69.99,
		Discount:      36,
		Category:      models.CategoryHomeLiving,
		Images: []string{
			"https://images.unsplash.com/photo-1583338964222-b82c4f2fd7b8?w=800&q=80",
		},
		Stock:   92,
		InStock: true,
		Rating:  4.6,
		Reviews: 156,
	},
	{
		ID:          "13",
		Name:        "Ceramic Coffee Mug Set",
		Slug:        "ceramic-coffee-mug-set",
		Description: "Set of 4 handcrafted ceramic mugs. Microwave and dishwasher safe.",
		Price:       34.99,
		Category:    models.CategoryHomeLiving,
		Images: []string{
			"https://images.unsplash.com/photo-1514228742587-6b1558fcca3d?w=800&q=80",
		},
		Stock:   127,
		InStock: true,
		Rating:  4.8,
		Reviews: 89,
	},
	{
		ID:          "14",
		Name:        "Bamboo Cutting Board",
		Slug:        "bamboo-cutting-board",
		Description: "Eco-friendly bamboo cutting board with juice groove. Durable and knife-friendly.",
		Price:       29.99,
		Category:    models.CategoryHomeLiving,
		Images: []string{
			"https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=800&q=80",
		},
		Stock:   156,
		InStock: true,
		Rating:  4.5,
		Reviews: 234,
	},
	{
		ID:          "15",
		Name:        "Throw Pillow Set",
		Slug:        "throw-pillow-set",
		Description: "Set of 2 decorative throw pillows with premium velvet covers. Adds comfort and style.",
		Price:       49.99,
		Category:    models.CategoryHomeLiving,
		Images: []string{
			"https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=800&q=80",
		},
		Variants: []models.ProductVariant{
			{ID: "v18", Type: "color", Name: "Color", Value: "Navy Blue", Available: true},
			{ID: "v19", Type: "color", Name: "Color", Value: "Gray", Available: true},
			{ID: "v20", Type: "color", Name: "Color", Value: "Beige", Available: true},
		},
		Stock:    64,
		InStock:  true,
		Featured: true,
		Rating:   4.7,
		Reviews:  178,
	},

	// Beauté
	{
		ID:            "16",
		Name:          "Luxury Skincare Set",
		Slug:          "luxury-skincare-set",
		Description:   "Complete skincare routine with cleanser, toner, serum, and moisturizer. Natural ingredients.",
		Price:         129.99,
		OriginalPrice: 199.99,
		Discount:      35,
		Category:      models.CategoryBeauty,
		Images: []string{
			"https://images.unsplash.com/photo-1556228578-0d85b1a4d571?w=800&q=80",
		},
		Stock:    38,
		InStock:  true,
		Featured: true,
		Rating:   4.9,
		Reviews:  267,
	},
	{
		ID:          "17",
		Name:        "Jade Facial Roller",
		Slug:        "jade-facial-roller",
		Description: "Natural jade stone facial roller for lymphatic drainage and reduced puffiness.",
		Price:       24.99,
		Category:    models.CategoryBeauty,
		Images: []string{
			"https://images.unsplash.com/photo-1612817159949-195b6eb9e31a?w=800&q=80",
		},
		Stock:   89,
		InStock: true,
		Rating:  4.6,
		Reviews: 134,
	},
	{
		ID:          "18",
		Name:        "Hair Styling Tools Set",
		Slug:        "hair-styling-tools-set",
		Description: "Professional-grade styling tools with ceramic coating and adjustable heat settings.",
		Price:       89.99,
		Category:    models.CategoryBeauty,
		Images: []string{
			"https://images.unsplash.com/photo-1522338242992-e1a54906a8da?w=800&q=80",
		},
		Stock:   23,
		InStock: true,
		Rating:  4.7,
		Reviews: 98,
	},

	// Sport
	{
		ID:          "19",
		Name:        "Yoga Mat Premium",
		Slug:        "yoga-mat-premium",
		Description: "Extra thick non-slip yoga mat with carrying strap. Perfect for all yoga styles.",
		Price:       49.99,
		Category:    models.CategorySports,
		Images: []string{
			"https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=800&q=80",
		},
		Variants: []models.ProductVariant{
			{ID: "v21", Type: "color", Name: "Color", Value: "Purple", Available: true},
			{ID: "v22", Type: "color", Name: "Color", Value: "Blue", Available: true},
			{ID: "v23", Type: "color", Name: "Color", Value: "Pink", Available: true},
		},
		Stock:   145,
		InStock: true,
		Rating:  4.8,
		Reviews: 289,
	},
	{
		ID:          "20",
		Name:        "Resistance Bands Set",
		Slug:        "resistance-bands-set",
		Description: "Set of 5 resistance bands with different strength levels. Includes carrying pouch.",
		Price:       29.99,
		Category:    models.CategorySports,
		Images: []string{
			"https://images.unsplash.com/photo-1598289431512-b97b0917affc?w=800&q=80",
		},
		Stock:   234,
		InStock: true,
		Rating:  4.5,
		Reviews: 445,
	},
}
