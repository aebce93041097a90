package product

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product adalah model domain dan GORM untuk tabel 'products'.
type Product struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Price       int64     `gorm:"not null" json:"price"`
	Stock       int       `gorm:"not null" json:"stock"`
	Image       string    `gorm:"type:text" json:"image"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Hook GORM untuk membuat ID baru sebelum create
func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}

// Payload JSON untuk create/edit produk di konsol admin
type ProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Price       int64  `json:"price" binding:"min=0"`
	Stock       int    `json:"stock" binding:"min=0"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func (r ProductRequest) ToProduct(id string) Product {
	return Product{
		ID:          id,
		Name:        r.Name,
		Price:       r.Price,
		Stock:       r.Stock,
		Image:       r.Image,
		Description: r.Description,
	}
}
