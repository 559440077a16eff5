package models

// Product is a catalog entry. The bson tags define the snake_case shape at
// the store boundary; json tags are the camelCase in-memory/cache shape.
type Product struct {
	ID           int64    `bson:"_id" json:"id"`
	Name         string   `bson:"name" json:"name"`
	Subtitle     string   `bson:"subtitle" json:"subtitle"`
	Category     string   `bson:"category" json:"category"`
	SubCategory  string   `bson:"sub_category,omitempty" json:"subCategory,omitempty"`
	Price        int      `bson:"price" json:"price"`
	Stock        int      `bson:"stock" json:"stock"`
	Image        string   `bson:"image" json:"image"`
	Images       []string `bson:"images,omitempty" json:"images,omitempty"`
	IsBestSeller bool     `bson:"is_best_seller" json:"isBestSeller"`
	IsNew        bool     `bson:"is_new" json:"isNew"`
}
