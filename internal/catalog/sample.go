package catalog

import (
	"time"

	"github.com/buddywhitman/foodswipe-sub000/internal/model"
)

// SampleCatalog is the built-in dish catalog used on first run and
// whenever neither the network nor the cache has anything better.
func SampleCatalog() []model.CatalogItem {
	return []model.CatalogItem{
		{
			ID: "dish-butter-chicken", Name: "Butter Chicken",
			Description:  "Tandoori chicken simmered in a buttery tomato gravy",
			RestaurantID: "rest-punjab-grill", RestaurantName: "Punjab Grill",
			Price: 320, Rating: 4.5,
			Tags:         []string{"north-indian", "non-veg"},
			DeliveryTime: "25-30 min", DistanceKM: 1.2,
			AddOns: []model.AddOn{
				{ID: "butter-naan", Name: "Butter Naan", Price: 45},
				{ID: "extra-gravy", Name: "Extra Gravy", Price: 60},
			},
		},
		{
			ID: "dish-masala-dosa", Name: "Masala Dosa",
			Description:  "Crisp rice crepe with spiced potato filling",
			RestaurantID: "rest-udupi-corner", RestaurantName: "Udupi Corner",
			Price: 110, Rating: 4.6,
			Tags:         []string{"south-indian", "vegetarian"},
			DeliveryTime: "15-20 min", DistanceKM: 0.8,
			AddOns: []model.AddOn{
				{ID: "extra-chutney", Name: "Extra Chutney", Price: 20},
				{ID: "ghee-roast", Name: "Ghee Roast Upgrade", Price: 35},
			},
		},
		{
			ID: "dish-veg-biryani", Name: "Hyderabadi Veg Biryani",
			Description:  "Fragrant basmati layered with vegetables and saffron",
			RestaurantID: "rest-paradise", RestaurantName: "Paradise Biryani",
			Price: 240, Rating: 4.2,
			Tags:         []string{"hyderabadi", "vegetarian"},
			DeliveryTime: "30-35 min", DistanceKM: 2.4,
			AddOns: []model.AddOn{
				{ID: "raita", Name: "Boondi Raita", Price: 30},
			},
		},
		{
			ID: "dish-chicken-biryani", Name: "Chicken Dum Biryani",
			Description:  "Slow-cooked dum biryani with marinated chicken",
			RestaurantID: "rest-paradise", RestaurantName: "Paradise Biryani",
			Price: 290, Rating: 4.7,
			Tags:         []string{"hyderabadi", "non-veg"},
			DeliveryTime: "30-35 min", DistanceKM: 2.4,
			AddOns: []model.AddOn{
				{ID: "raita", Name: "Boondi Raita", Price: 30},
				{ID: "extra-leg", Name: "Extra Leg Piece", Price: 80},
			},
		},
		{
			ID: "dish-momos", Name: "Steamed Chicken Momos",
			Description:  "Eight pieces with fiery red chutney",
			RestaurantID: "rest-himalayan", RestaurantName: "Himalayan Kitchen",
			Price: 150, Rating: 4.1,
			Tags:         []string{"tibetan", "non-veg"},
			DeliveryTime: "20-25 min", DistanceKM: 1.7,
		},
		{
			ID: "dish-paneer-tikka", Name: "Paneer Tikka",
			Description:  "Char-grilled cottage cheese with mint chutney",
			RestaurantID: "rest-punjab-grill", RestaurantName: "Punjab Grill",
			Price: 260, Rating: 4.3,
			Tags:         []string{"north-indian", "vegetarian"},
			DeliveryTime: "25-30 min", DistanceKM: 1.2,
		},
		{
			ID: "dish-margherita", Name: "Margherita Pizza",
			Description:  "Wood-fired sourdough base, fresh basil",
			RestaurantID: "rest-fireoven", RestaurantName: "Fire Oven Pizzeria",
			Price: 350, Rating: 4.4,
			Tags:         []string{"italian", "vegetarian"},
			DeliveryTime: "35-40 min", DistanceKM: 3.1,
			AddOns: []model.AddOn{
				{ID: "cheese-burst", Name: "Cheese Burst", Price: 90},
				{ID: "olives", Name: "Olives", Price: 40},
			},
		},
		{
			ID: "dish-pav-bhaji", Name: "Pav Bhaji",
			Description:  "Mashed vegetable curry with buttered pav",
			RestaurantID: "rest-bombay-street", RestaurantName: "Bombay Street Eats",
			Price: 130, Rating: 4.0,
			Tags:         []string{"street-food", "vegetarian"},
			DeliveryTime: "15-20 min", DistanceKM: 0.6,
			AddOns: []model.AddOn{
				{ID: "extra-pav", Name: "Extra Pav", Price: 15},
			},
		},
		{
			ID: "dish-sushi-platter", Name: "Salmon Sushi Platter",
			Description:  "Twelve pieces of nigiri and maki",
			RestaurantID: "rest-okinawa", RestaurantName: "Okinawa House",
			Price: 650, Rating: 4.8,
			Tags:         []string{"japanese", "non-veg"},
			DeliveryTime: "40-45 min", DistanceKM: 4.5,
		},
		{
			ID: "dish-falafel-bowl", Name: "Falafel Hummus Bowl",
			Description:  "Falafel over hummus with pita and pickles",
			RestaurantID: "rest-levant", RestaurantName: "Levant Express",
			Price: 220, Rating: 4.2,
			Tags:         []string{"middle-eastern", "vegan"},
			DeliveryTime: "25-30 min", DistanceKM: 2.0,
		},
		{
			ID: "dish-chole-bhature", Name: "Chole Bhature",
			Description:  "Spiced chickpeas with fluffy fried bread",
			RestaurantID: "rest-bombay-street", RestaurantName: "Bombay Street Eats",
			Price: 140, Rating: 4.3,
			Tags:         []string{"north-indian", "street-food", "vegetarian"},
			DeliveryTime: "15-20 min", DistanceKM: 0.6,
			AddOns: []model.AddOn{
				{ID: "lassi", Name: "Sweet Lassi", Price: 60},
			},
		},
		{
			ID: "dish-gulab-jamun", Name: "Gulab Jamun",
			Description:  "Two pieces in warm rose syrup",
			RestaurantID: "rest-udupi-corner", RestaurantName: "Udupi Corner",
			Price: 80, Rating: 4.5,
			Tags:         []string{"dessert", "vegetarian"},
			DeliveryTime: "15-20 min", DistanceKM: 0.8,
		},
	}
}

// SampleCoupons mirrors the promo list the coupon source serves,
// usable offline.
func SampleCoupons() []model.Coupon {
	year := time.Now().Year() + 1
	expiry := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	minOrder := 500
	cap := 200
	welcomeCap := 150
	return []model.Coupon{
		{
			Code: "FLAT100", Description: "₹100 off orders above ₹500",
			Model: model.DiscountFixed, Amount: 100,
			MinOrder: &minOrder, Active: true, ExpiresAt: expiry,
		},
		{
			Code: "SAVE20", Description: "20% off up to ₹200",
			Model: model.DiscountPercentage, Rate: 20, Cap: &cap,
			Active: true, ExpiresAt: expiry,
		},
		{
			Code: "WELCOME50", Description: "50% off your first order, up to ₹150",
			Model: model.DiscountPercentage, Rate: 50, Cap: &welcomeCap,
			Active: true, ExpiresAt: expiry,
		},
	}
}
