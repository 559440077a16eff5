package service

import "zerodefect-backend/models"

// DefaultProducts is the starter catalog inserted when the store is empty.
func DefaultProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Basmati Rice", Subtitle: "Premium Long Grain", Price: 150, Category: "rice", Image: img("Basmati+Rice"), Images: []string{img("Basmati+Rice"), img("Basmati+Detail+1"), img("Basmati+Detail+2")}, IsBestSeller: true, Stock: 1000},
		{ID: 2, Name: "Sona Masoori Rice", Subtitle: "Medium Grain", Price: 100, Category: "rice", Image: img("Sona+Masoori"), Images: []string{img("Sona+Masoori"), img("Sona+Detail")}, Stock: 800},
		{ID: 3, Name: "Toor Dal", Subtitle: "Split Pigeon Peas", Price: 120, Category: "pulses", Image: img("Toor+Dal"), Images: []string{img("Toor+Dal"), img("Toor+Detail")}, IsBestSeller: true, Stock: 500},
		{ID: 4, Name: "Moong Dal", Subtitle: "Split Mung Beans", Price: 110, Category: "pulses", Image: img("Moong+Dal"), Images: []string{img("Moong+Dal")}, Stock: 600},
		{ID: 5, Name: "Wheat", Subtitle: "High-Quality Milling Wheat", Price: 80, Category: "grains", Image: img("Wheat"), Images: []string{img("Wheat")}, Stock: 2000},
		{ID: 6, Name: "Maize", Subtitle: "Yellow Corn", Price: 90, Category: "grains", Image: img("Maize"), Images: []string{img("Maize")}, Stock: 1500},
		{ID: 7, Name: "Brown Rice", Subtitle: "Whole Grain Goodness", Price: 130, Category: "rice", Image: img("Brown+Rice"), Images: []string{img("Brown+Rice")}, Stock: 400},
		{ID: 8, Name: "Masoor Dal", Subtitle: "Red Lentils", Price: 105, Category: "pulses", Image: img("Masoor+Dal"), Images: []string{img("Masoor+Dal")}, Stock: 700},
		{ID: 9, Name: "Barley", Subtitle: "Nutritious Grain", Price: 70, Category: "grains", Image: img("Barley"), Images: []string{img("Barley")}, Stock: 900},
		{ID: 10, Name: "Black Pepper", Subtitle: "King of Spices", Price: 450, Category: "spices", Image: img("Black+Pepper"), Images: []string{img("Black+Pepper")}, IsBestSeller: true, Stock: 200},
		{ID: 11, Name: "Cardamom", Subtitle: "Queen of Spices", Price: 1200, Category: "spices", Image: img("Cardamom"), Images: []string{img("Cardamom")}, Stock: 100},
		{ID: 12, Name: "Desiccated Coconut", Subtitle: "High Fat Powder", Price: 180, Category: "coconut", Image: img("Desiccated+Coconut"), Images: []string{img("Desiccated+Coconut")}, Stock: 500},
		{ID: 13, Name: "Coconut Oil", Subtitle: "Cold Pressed Virgin", Price: 350, Category: "coconut", SubCategory: "oil", Image: img("Coconut+Oil"), Images: []string{img("Coconut+Oil")}, IsBestSeller: true, Stock: 300, IsNew: true},
		{ID: 14, Name: "1121 Basmati Rice", Subtitle: "Extra Long Grain", Price: 180, Category: "rice", Image: img("1121+Basmati"), Images: []string{img("1121+Basmati")}, IsBestSeller: true, Stock: 500, IsNew: true},
		{ID: 15, Name: "Urad Dal", Subtitle: "Black Gram Split", Price: 130, Category: "pulses", Image: img("Urad+Dal"), Images: []string{img("Urad+Dal")}, Stock: 400},
		{ID: 16, Name: "Sorghum", Subtitle: "Jowar / Milo", Price: 55, Category: "grains", Image: img("Sorghum"), Images: []string{img("Sorghum")}, Stock: 1000, IsNew: true},
		{ID: 17, Name: "Turmeric Powder", Subtitle: "High Curcumin", Price: 220, Category: "spices", SubCategory: "powder", Image: img("Turmeric"), Images: []string{img("Turmeric")}, IsBestSeller: true, Stock: 300},
		{ID: 18, Name: "Dry Copra", Subtitle: "Sun Dried", Price: 160, Category: "coconut", SubCategory: "whole", Image: img("Copra"), Images: []string{img("Copra")}, Stock: 600, IsNew: true},
		{ID: 19, Name: "Jasmine Rice", Subtitle: "Aromatic Fragrance", Price: 200, Category: "rice", Image: img("Jasmine+Rice"), Images: []string{img("Jasmine+Rice")}, Stock: 300, IsNew: true},
		{ID: 20, Name: "Chana Dal", Subtitle: "Split Chickpeas", Price: 90, Category: "pulses", Image: img("Chana+Dal"), Images: []string{img("Chana+Dal")}, IsBestSeller: true, Stock: 800},
		{ID: 21, Name: "Pearl Millet", Subtitle: "Bajra", Price: 45, Category: "grains", Image: img("Pearl+Millet"), Images: []string{img("Pearl+Millet")}, Stock: 1200, IsNew: true},
		{ID: 22, Name: "Cumin Seeds", Subtitle: "Jeera", Price: 350, Category: "spices", SubCategory: "whole", Image: img("Cumin+Seeds"), Images: []string{img("Cumin+Seeds")}, IsBestSeller: true, Stock: 250},
		{ID: 23, Name: "Coconut Milk Powder", Subtitle: "Instant Mix", Price: 400, Category: "coconut", SubCategory: "desiccated", Image: img("Coconut+Milk+Powder"), Images: []string{img("Coconut+Milk+Powder")}, Stock: 150, IsNew: true},
		{ID: 24, Name: "Cloves", Subtitle: "Aromatic Flower Buds", Price: 900, Category: "spices", SubCategory: "whole", Image: img("Cloves"), Images: []string{img("Cloves")}, Stock: 80, IsNew: true},
	}
}

func img(label string) string {
	return "https://placehold.co/400x300?text=" + label
}

// DefaultSettings is the store profile used until an admin saves one.
func DefaultSettings() models.Settings {
	return models.Settings{
		ID:                    models.SettingsID,
		StoreName:             "Zero Defect Export & Manufacturing",
		Tagline:               "Premium Agricultural Export Solutions from India",
		StoreEmail:            "export@zerodefect.com",
		StorePhone:            "+91 XXX XXX XXXX",
		StoreWhatsapp:         "+91 XXX XXX XXXX",
		StoreLocation:         "India",
		BusinessHoursWeekdays: "Monday - Friday: 9:00 AM - 6:00 PM IST",
		BusinessHoursSaturday: "Saturday: 10:00 AM - 4:00 PM IST",
		BusinessHoursSunday:   "Sunday: Closed",
		SocialLinkedin:        "#",
		SocialTwitter:         "#",
		SocialInstagram:       "#",
		SocialFacebook:        "#",
	}
}
