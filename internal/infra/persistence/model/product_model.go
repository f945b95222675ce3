package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. The storefront only reads it;
// catalog management happens in an external back office.
type ProductModel struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	CategoryID int64           `gorm:"not null;index"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Brand      string          `gorm:"column:product_brand;type:varchar(255)"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	ImagePath  string          `gorm:"type:varchar(512)"`
	AddedAt    time.Time       `gorm:"autoCreateTime"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel mirrors the 'category' table.
type CategoryModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);not null"`
	ImagePath string `gorm:"type:varchar(512)"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "category"
}

// WishlistModel mirrors the 'wishlist' table. The composite primary key makes
// (user, product) the natural key, so a toggle can never create a duplicate.
type WishlistModel struct {
	UserID    int64 `gorm:"primaryKey;autoIncrement:false"`
	ProductID int64 `gorm:"primaryKey;autoIncrement:false;column:wishlist_item_id"`
	CreatedAt time.Time

	User    *UserModel    `gorm:"foreignKey:UserID"`
	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistModel) TableName() string {
	return "wishlist"
}
