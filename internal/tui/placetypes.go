package tui

import "strings"

// placeTypes is the subset of Places API table A types offered by the
// type filter picker.
var placeTypes = []string{
	"american_restaurant",
	"amusement_park",
	"aquarium",
	"art_gallery",
	"atm",
	"bakery",
	"bank",
	"bar",
	"barbecue_restaurant",
	"book_store",
	"bowling_alley",
	"brunch_restaurant",
	"cafe",
	"campground",
	"car_rental",
	"casino",
	"chinese_restaurant",
	"church",
	"clothing_store",
	"coffee_shop",
	"convenience_store",
	"department_store",
	"electric_vehicle_charging_station",
	"fast_food_restaurant",
	"french_restaurant",
	"gas_station",
	"greek_restaurant",
	"grocery_store",
	"gym",
	"hair_salon",
	"hiking_area",
	"historical_landmark",
	"hospital",
	"hotel",
	"ice_cream_shop",
	"indian_restaurant",
	"italian_restaurant",
	"japanese_restaurant",
	"korean_restaurant",
	"library",
	"liquor_store",
	"lodging",
	"mexican_restaurant",
	"movie_theater",
	"museum",
	"night_club",
	"park",
	"parking",
	"pharmacy",
	"pizza_restaurant",
	"ramen_restaurant",
	"restaurant",
	"seafood_restaurant",
	"shopping_mall",
	"spa",
	"steak_house",
	"supermarket",
	"sushi_restaurant",
	"thai_restaurant",
	"tourist_attraction",
	"train_station",
	"turkish_restaurant",
	"vegan_restaurant",
	"vegetarian_restaurant",
	"vietnamese_restaurant",
	"zoo",
}

// matchTypes returns up to max place types matching input, prefix
// matches before substring matches.
func matchTypes(input string, max int) []string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil
	}

	var prefix, contains []string
	for _, t := range placeTypes {
		switch {
		case strings.HasPrefix(t, input):
			prefix = append(prefix, t)
		case strings.Contains(t, input):
			contains = append(contains, t)
		}
	}

	matches := append(prefix, contains...)
	if len(matches) > max {
		matches = matches[:max]
	}
	return matches
}
