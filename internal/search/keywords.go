package search

// DefaultKeywords is the curated food and diet vocabulary used when no
// keyword file is configured.
var DefaultKeywords = []string{
	"Keto", "Paleo", "Vegan", "Vegetarian", "Mediterranean Diet", "Whole30",
	"Pescatarian", "Flexitarian", "Low Carb", "High Protein", "Atkins",
	"Intermittent Fasting", "Carnivore Diet", "Plant Based", "DASH Diet",
	"Gluten Free", "Dairy Free", "Sugar Free", "Raw Food", "Low FODMAP",
	"Macrobiotic", "Calorie Counting", "Nutrient Dense", "Clean Eating",
	"Anti Inflammatory", "Baking", "Roasting", "Frying", "Sautéing",
	"Grilling", "Steaming", "Boiling", "Poaching", "Braising", "Stewing",
	"Broiling", "Barbecue", "Smoking", "Sous Vide", "Air Frying",
	"Slow Cooking", "Pressure Cooking", "Fermenting", "Pickling", "Canning",
	"Blanching", "Caramelizing", "Glazing", "Marinating", "Deep Frying",
	"Pan Searing", "Wok Cooking", "Knife Skills", "Mise en Place",
	"Meal Prep", "Organic", "Non GMO", "Whole Foods", "Processed Foods",
	"Superfoods", "Comfort Food", "Street Food", "Fine Dining",
	"Farm to Table", "Sustainable", "Locally Sourced", "Seasonal", "Seafood",
	"Poultry", "Red Meat", "Grains", "Legumes", "Root Vegetables",
	"Leafy Greens", "Cruciferous Vegetables", "Citrus", "Berries",
	"Stone Fruit", "Nuts", "Seeds", "Dairy", "Artisan Cheese", "Spices",
	"Fresh Herbs", "Sauces", "Condiments", "Healthy Fats", "Probiotics",
	"Fiber",
}
