package models

import (
	"strconv"

	"bitbucket.org/mmdatafocus/profit_backend/utils"
)

// FieldChange is one old→new pair the history viewer renders.
// Values are pre-formatted for display (prices as currency,
// type mapped to its label).
type FieldChange struct {
	Field    string `json:"field"`
	Label    string `json:"label"`
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

var fieldLabels = map[string]string{
	"name":           "Tên",
	"type":           "Loại",
	"importPrice":    "Giá nhập",
	"sellPrice":      "Giá bán",
	"importQuantity": "SL nhập",
	"soldQuantity":   "SL bán",
}

func typeLabel(t string) string {
	if t == ProductTypeProduct {
		return "Sản phẩm"
	}
	return "Vật tư"
}

// ChangedFields compares the two snapshots of an update entry field by
// field. The field set is enumerated explicitly and each field is compared
// with its own type's equality, so there is no coercion to surprise us.
// Create and delete entries carry a single snapshot and have no diff.
func (h *ProductHistory) ChangedFields() []FieldChange {
	if h.ChangeType != ChangeTypeUpdate || h.PreviousValues == nil || h.NewValues == nil {
		return nil
	}
	prev := h.PreviousValues
	next := h.NewValues

	var changes []FieldChange
	if prev.Name != next.Name {
		changes = append(changes, FieldChange{
			Field:    "name",
			Label:    fieldLabels["name"],
			OldValue: prev.Name,
			NewValue: next.Name,
		})
	}
	if prev.Type != next.Type {
		changes = append(changes, FieldChange{
			Field:    "type",
			Label:    fieldLabels["type"],
			OldValue: typeLabel(prev.Type),
			NewValue: typeLabel(next.Type),
		})
	}
	if !prev.ImportPrice.Equal(next.ImportPrice) {
		changes = append(changes, FieldChange{
			Field:    "importPrice",
			Label:    fieldLabels["importPrice"],
			OldValue: utils.FormatMoney(prev.ImportPrice),
			NewValue: utils.FormatMoney(next.ImportPrice),
		})
	}
	if !prev.SellPrice.Equal(next.SellPrice) {
		changes = append(changes, FieldChange{
			Field:    "sellPrice",
			Label:    fieldLabels["sellPrice"],
			OldValue: utils.FormatMoney(prev.SellPrice),
			NewValue: utils.FormatMoney(next.SellPrice),
		})
	}
	if prev.ImportQuantity != next.ImportQuantity {
		changes = append(changes, FieldChange{
			Field:    "importQuantity",
			Label:    fieldLabels["importQuantity"],
			OldValue: strconv.Itoa(prev.ImportQuantity),
			NewValue: strconv.Itoa(next.ImportQuantity),
		})
	}
	if prev.SoldQuantity != next.SoldQuantity {
		changes = append(changes, FieldChange{
			Field:    "soldQuantity",
			Label:    fieldLabels["soldQuantity"],
			OldValue: strconv.Itoa(prev.SoldQuantity),
			NewValue: strconv.Itoa(next.SoldQuantity),
		})
	}
	return changes
}
