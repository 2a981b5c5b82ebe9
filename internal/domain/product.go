package domain

import "time"

// Product é um produto do catálogo de varejo. ID é o identificador interno
// (nanoid); ProductID é o identificador externo vindo do CSV de ingestão.
type Product struct {
	ID                       string    `json:"id"`
	ProductID                string    `json:"product_id"`
	ProductCategoryName      string    `json:"product_category_name"`
	ProductNameLength        int       `json:"product_name_length"`
	ProductDescriptionLength int       `json:"product_description_length"`
	ProductPhotosQty         int       `json:"product_photos_qty"`
	ProductWeightG           int       `json:"product_weight_g"`
	ProductScore             float64   `json:"product_score"`
	Volume                   float64   `json:"volume"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}
