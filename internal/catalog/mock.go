package catalog

// Mock returns the compiled-in sample restaurants standing in for a
// real backend.
func Mock() []Restaurant {
	return []Restaurant{
		{
			ID:           "1",
			Name:         "Pizza Palace",
			Image:        "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg",
			Cuisine:      "Italian",
			Rating:       4.5,
			DeliveryTime: "25-35 min",
			DeliveryFee:  2.99,
			MinimumOrder: 15,
			Description:  "Authentic Italian pizza with fresh ingredients",
			Address:      "123 Main St, Downtown",
			Phone:        "+1-555-0123",
			IsOpen:       true,
			Menu: []MenuItem{
				{
					ID:             "1",
					Name:           "Margherita Pizza",
					Description:    "Fresh mozzarella, tomato sauce, basil",
					Price:          12.99,
					Image:          "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg",
					Category:       "Pizza",
					IsVegetarian:   true,
					Customizations: []string{"Extra cheese", "Thin crust", "Gluten-free"},
				},
				{
					ID:          "2",
					Name:        "Pepperoni Pizza",
					Description: "Pepperoni, mozzarella, tomato sauce",
					Price:       14.99,
					Image:       "https://images.pexels.com/photos/845808/pexels-photo-845808.jpeg",
					Category:    "Pizza",
				},
			},
		},
		{
			ID:           "2",
			Name:         "Burger House",
			Image:        "https://images.pexels.com/photos/1639565/pexels-photo-1639565.jpeg",
			Cuisine:      "American",
			Rating:       4.2,
			DeliveryTime: "20-30 min",
			DeliveryFee:  1.99,
			MinimumOrder: 12,
			Description:  "Gourmet burgers and fries",
			Address:      "456 Oak Ave, Midtown",
			Phone:        "+1-555-0456",
			IsOpen:       true,
			Menu: []MenuItem{
				{
					ID:          "3",
					Name:        "Classic Cheeseburger",
					Description: "Beef patty, cheddar cheese, lettuce, tomato",
					Price:       9.99,
					Image:       "https://images.pexels.com/photos/1639565/pexels-photo-1639565.jpeg",
					Category:    "Burgers",
				},
			},
		},
		{
			ID:           "3",
			Name:         "Sushi Zen",
			Image:        "https://images.pexels.com/photos/248444/pexels-photo-248444.jpeg",
			Cuisine:      "Japanese",
			Rating:       4.8,
			DeliveryTime: "30-45 min",
			DeliveryFee:  3.99,
			MinimumOrder: 20,
			Description:  "Fresh sushi and Japanese cuisine",
			Address:      "789 Cherry Blossom St",
			Phone:        "+1-555-0789",
			IsOpen:       true,
			Menu: []MenuItem{
				{
					ID:          "4",
					Name:        "California Roll",
					Description: "Crab, avocado, cucumber, sesame seeds",
					Price:       8.99,
					Image:       "https://images.pexels.com/photos/248444/pexels-photo-248444.jpeg",
					Category:    "Sushi",
				},
			},
		},
	}
}
