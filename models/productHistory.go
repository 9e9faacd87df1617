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
	ChangeTypeCreate = "create"
	ChangeTypeUpdate = "update"
	ChangeTypeDelete = "delete"
)

const (
	MsgHistoryNotFound = "Không tìm thấy lịch sử"
)

// ProductSnapshot is the full mutable field set of a product at one
// point in time. History entries always carry whole snapshots, never
// partial ones, so the diff view can compare any two states.
type ProductSnapshot struct {
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	ImportPrice    decimal.Decimal `json:"importPrice"`
	SellPrice      decimal.Decimal `json:"sellPrice"`
	ImportQuantity int             `json:"importQuantity"`
	SoldQuantity   int             `json:"soldQuantity"`
}

// ProductHistory is an append-only audit record of one create/update/delete.
// ProductId is a weak reference: entries outlive their product.
// Everything except Note is immutable once written.
type ProductHistory struct {
	ID             uuid.UUID        `gorm:"type:char(36);primary_key" json:"id"`
	ProductId      uuid.UUID        `gorm:"type:char(36);not null;index:idx_product_histories_product_created,priority:1" json:"productId"`
	ChangeType     string           `gorm:"size:10;not null" json:"changeType"`
	PreviousValues *ProductSnapshot `gorm:"serializer:json;type:text" json:"previousValues"`
	NewValues      *ProductSnapshot `gorm:"serializer:json;type:text" json:"newValues"`
	Note           *string          `gorm:"type:text" json:"note"`
	CreatedAt      time.Time        `gorm:"autoCreateTime;index:idx_product_histories_product_created,priority:2" json:"createdAt"`
}

func recordProductHistory(tx *gorm.DB, productId uuid.UUID, changeType string, before *ProductSnapshot, after *ProductSnapshot, note *string) error {
	entry := ProductHistory{
		ID:             uuid.New(),
		ProductId:      productId,
		ChangeType:     changeType,
		PreviousValues: before,
		NewValues:      after,
		Note:           note,
	}
	return tx.Create(&entry).Error
}

// recordProductHistoryBestEffort appends a history entry after a product
// write has already committed. History is auxiliary data: a failure here is
// logged and swallowed so it can never mask the primary operation's success.
func recordProductHistoryBestEffort(ctx context.Context, funcName string, productId uuid.UUID, changeType string, before *ProductSnapshot, after *ProductSnapshot, note *string) {
	db := config.GetDB()
	if err := recordProductHistory(db.WithContext(ctx), productId, changeType, before, after, note); err != nil {
		config.LogError(config.GetLogger(), "productHistory.go", funcName, "record "+changeType+" history", productId, err)
	}
}

// GetProductHistory returns a product's history, newest first.
// The product itself may already be deleted.
func GetProductHistory(ctx context.Context, productId uuid.UUID) ([]*ProductHistory, error) {
	db := config.GetDB()
	var results []*ProductHistory
	err := db.WithContext(ctx).
		Where("product_id = ?", productId).
		Order("created_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateHistoryNote replaces the note of one entry. No other field of a
// history entry is reachable through this path.
func UpdateHistoryNote(ctx context.Context, historyId uuid.UUID, note string) (*ProductHistory, error) {
	db := config.GetDB()

	var entry ProductHistory
	err := db.WithContext(ctx).Where("id = ?", historyId).First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}

	err = db.WithContext(ctx).Model(&entry).Update("Note", note).Error
	if err != nil {
		return nil, err
	}
	entry.Note = &note
	return &entry, nil
}
