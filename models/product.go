package models

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/profit_backend/config"
	"bitbucket.org/mmdatafocus/profit_backend/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ProductTypeProduct  = "product"
	ProductTypeMaterial = "material"
)

// User-facing messages (kept in Vietnamese, matching the storefront UI).
const (
	MsgSoldExceedsImport   = "Số lượng bán không được vượt quá số lượng nhập"
	MsgNameRequired        = "Vui lòng nhập tên sản phẩm"
	MsgImportPriceNegative = "Giá nhập không được âm"
	MsgSellPriceNegative   = "Giá bán không được âm"
	MsgImportQtyNegative   = "Số lượng nhập không được âm"
	MsgSoldQtyNegative     = "Số lượng bán không được âm"
	MsgInvalidProductType  = "Loại sản phẩm không hợp lệ"
	MsgProductNotFound     = "Không tìm thấy sản phẩm"
	WarningSellBelowImport = "Cảnh báo: Giá bán thấp hơn giá nhập, sản phẩm này sẽ lỗ!"
)

type Product struct {
	ID             uuid.UUID       `gorm:"type:char(36);primary_key" json:"id"`
	Name           string          `gorm:"size:255;not null" json:"name" binding:"required"`
	Type           string          `gorm:"size:20;not null;default:product" json:"type"`
	ImportPrice    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"importPrice"`
	SellPrice      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"sellPrice"`
	ImportQuantity int             `gorm:"not null" json:"importQuantity"`
	SoldQuantity   int             `gorm:"not null;default:0" json:"soldQuantity"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`

	// Derived fields, computed on every read/write, never stored.
	Revenue decimal.Decimal `gorm:"-" json:"revenue"`
	Cost    decimal.Decimal `gorm:"-" json:"cost"`
	Profit  decimal.Decimal `gorm:"-" json:"profit"`
	IsLoss  bool            `gorm:"-" json:"isLoss"`
}

type NewProduct struct {
	Name           string          `json:"name" binding:"required"`
	Type           string          `json:"type"`
	ImportPrice    decimal.Decimal `json:"importPrice"`
	SellPrice      decimal.Decimal `json:"sellPrice"`
	ImportQuantity int             `json:"importQuantity"`
	SoldQuantity   *int            `json:"soldQuantity"`
}

func (p *Product) AfterFind(tx *gorm.DB) error {
	p.ComputeDerived()
	return nil
}

// ComputeDerived fills revenue, cost, profit and the loss flag
// from the stored fields:
//
//	revenue = sellPrice * soldQuantity
//	cost    = importPrice * soldQuantity
//	profit  = revenue - cost
//	isLoss  = sellPrice < importPrice
func (p *Product) ComputeDerived() {
	sold := decimal.NewFromInt(int64(p.SoldQuantity))
	p.Revenue = p.SellPrice.Mul(sold)
	p.Cost = p.ImportPrice.Mul(sold)
	p.Profit = p.Revenue.Sub(p.Cost)
	p.IsLoss = p.SellPrice.LessThan(p.ImportPrice)
}

// LossWarning returns the advisory warning shown when selling below the
// import price. Material rows never warn: materials are consumed, not sold,
// so a sell price below import price carries no loss semantics for them.
func (p *Product) LossWarning() string {
	if p.Type == ProductTypeProduct && p.SellPrice.LessThan(p.ImportPrice) {
		return WarningSellBelowImport
	}
	return ""
}

func (p *Product) snapshot() *ProductSnapshot {
	return &ProductSnapshot{
		Name:           p.Name,
		Type:           p.Type,
		ImportPrice:    p.ImportPrice,
		SellPrice:      p.SellPrice,
		ImportQuantity: p.ImportQuantity,
		SoldQuantity:   p.SoldQuantity,
	}
}

// validate input for both create & update.
// Rejecting (never clamping) keeps sold <= imported an invariant of the table.
func (input *NewProduct) validate() error {
	if input.Name == "" {
		return utils.NewValidationError(MsgNameRequired)
	}
	if input.Type != "" && input.Type != ProductTypeProduct && input.Type != ProductTypeMaterial {
		return utils.NewValidationError(MsgInvalidProductType)
	}
	if input.ImportPrice.IsNegative() {
		return utils.NewValidationError(MsgImportPriceNegative)
	}
	if input.SellPrice.IsNegative() {
		return utils.NewValidationError(MsgSellPriceNegative)
	}
	if input.ImportQuantity < 0 {
		return utils.NewValidationError(MsgImportQtyNegative)
	}
	sold := 0
	if input.SoldQuantity != nil {
		sold = *input.SoldQuantity
	}
	if sold < 0 {
		return utils.NewValidationError(MsgSoldQtyNegative)
	}
	if sold > input.ImportQuantity {
		return utils.NewValidationError(MsgSoldExceedsImport)
	}
	return nil
}

func ListAllProducts(ctx context.Context) ([]*Product, error) {
	db := config.GetDB()
	var results []*Product
	err := db.WithContext(ctx).Order("created_at DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	db := config.GetDB()
	var product Product
	err := db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}
	return &product, nil
}

func CreateProduct(ctx context.Context, input *NewProduct) (*Product, error) {

	if err := input.validate(); err != nil {
		return nil, err
	}

	productType := input.Type
	if productType == "" {
		productType = ProductTypeProduct
	}
	sold := 0
	if input.SoldQuantity != nil {
		sold = *input.SoldQuantity
	}

	product := Product{
		ID:             uuid.New(),
		Name:           input.Name,
		Type:           productType,
		ImportPrice:    input.ImportPrice,
		SellPrice:      input.SellPrice,
		ImportQuantity: input.ImportQuantity,
		SoldQuantity:   sold,
	}

	// db action
	db := config.GetDB()
	err := db.WithContext(ctx).Create(&product).Error
	if err != nil {
		return nil, err
	}
	product.ComputeDerived()

	recordProductHistoryBestEffort(ctx, "CreateProduct", product.ID, ChangeTypeCreate, nil, product.snapshot(), nil)

	return &product, nil
}

func UpdateProduct(ctx context.Context, id uuid.UUID, input *NewProduct, note *string) (*Product, error) {

	if err := input.validate(); err != nil {
		return nil, err
	}

	product, err := GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	before := product.snapshot()

	productType := input.Type
	if productType == "" {
		productType = ProductTypeProduct
	}
	sold := 0
	if input.SoldQuantity != nil {
		sold = *input.SoldQuantity
	}

	// Full-field replace, zero values included.
	db := config.GetDB()
	err = db.WithContext(ctx).Model(product).Updates(map[string]interface{}{
		"Name":           input.Name,
		"Type":           productType,
		"ImportPrice":    input.ImportPrice,
		"SellPrice":      input.SellPrice,
		"ImportQuantity": input.ImportQuantity,
		"SoldQuantity":   sold,
	}).Error
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Type = productType
	product.ImportPrice = input.ImportPrice
	product.SellPrice = input.SellPrice
	product.ImportQuantity = input.ImportQuantity
	product.SoldQuantity = sold
	product.ComputeDerived()

	recordProductHistoryBestEffort(ctx, "UpdateProduct", product.ID, ChangeTypeUpdate, before, product.snapshot(), note)

	return product, nil
}

// DeleteProduct removes the row and its final snapshot in one transaction,
// so a deleted product can never be missing its delete history entry.
func DeleteProduct(ctx context.Context, id uuid.UUID) (*Product, error) {

	product, err := GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := recordProductHistory(tx, product.ID, ChangeTypeDelete, product.snapshot(), nil, nil); err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Product{}).Error
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}
