package models

import (
	"time"

	"gorm.io/datatypes"
)

// FreelanceProject is the read-side model of the freelance listings table.
// Writes go through the submission pipeline; this model only serves queries.
type FreelanceProject struct {
	ID            int            `gorm:"primaryKey" json:"id"`
	Title         string         `gorm:"column:title" json:"title"`
	SellerName    string         `gorm:"column:seller_name" json:"sellerName"`
	DomainName    *string        `gorm:"column:domain_name" json:"domainName"`
	MinPrice      *float64       `gorm:"column:min_price" json:"minPrice"`
	MaxPrice      *float64       `gorm:"column:max_price" json:"maxPrice"`
	ZipFile       *string        `gorm:"column:zip_file" json:"zipFile"`
	Images        datatypes.JSON `gorm:"column:images;type:jsonb" json:"images"`
	ProjectDetail *string        `gorm:"column:project_detail" json:"projectDetail"`
	CreatedAt     time.Time      `gorm:"column:created_at" json:"createdAt"`
}

func (FreelanceProject) TableName() string {
	return "freelance"
}
