package models

// Product represents a catalog item of the silk collection
type Product struct {
	ID       int     `bson:"_id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Image    string  `bson:"image" json:"image"`
	Category string  `bson:"category" json:"category"`
	Rating   float64 `bson:"rating" json:"rating"`
	Reviews  int     `bson:"reviews" json:"reviews"`
}

// Categories lists the catalog filter tabs, "All" first.
var Categories = []string{"All", "Women", "Men", "Accessories", "Home", "Loungewear"}
