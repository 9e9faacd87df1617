package models_test

import (
	"testing"

	"bitbucket.org/mmdatafocus/profit_backend/models"
)

func snapshot(sellPrice string) *models.ProductSnapshot {
	return &models.ProductSnapshot{
		Name:           "Widget",
		Type:           models.ProductTypeProduct,
		ImportPrice:    dec("100"),
		SellPrice:      dec(sellPrice),
		ImportQuantity: 10,
		SoldQuantity:   0,
	}
}

func TestChangedFieldsSingleChange(t *testing.T) {
	h := models.ProductHistory{
		ChangeType:     models.ChangeTypeUpdate,
		PreviousValues: snapshot("80"),
		NewValues:      snapshot("150"),
	}

	changes := h.ChangedFields()
	if len(changes) != 1 {
		t.Fatalf("len(changes) = %d, want 1", len(changes))
	}
	c := changes[0]
	if c.Field != "sellPrice" {
		t.Errorf("field = %q, want sellPrice", c.Field)
	}
	if c.Label != "Giá bán" {
		t.Errorf("label = %q, want Giá bán", c.Label)
	}
	if c.OldValue != "80đ" {
		t.Errorf("oldValue = %q, want 80đ", c.OldValue)
	}
	if c.NewValue != "150đ" {
		t.Errorf("newValue = %q, want 150đ", c.NewValue)
	}
}

func TestChangedFieldsEqualDecimalsDifferOnlyInScale(t *testing.T) {
	prev := snapshot("80")
	next := snapshot("80.00")
	h := models.ProductHistory{
		ChangeType:     models.ChangeTypeUpdate,
		PreviousValues: prev,
		NewValues:      next,
	}

	// 80 and 80.00 are the same amount; scale must not produce a diff.
	if changes := h.ChangedFields(); len(changes) != 0 {
		t.Errorf("changes = %v, want none", changes)
	}
}

func TestChangedFieldsMultipleChanges(t *testing.T) {
	prev := snapshot("80")
	next := snapshot("80")
	next.Name = "Widget Pro"
	next.Type = models.ProductTypeMaterial
	next.SoldQuantity = 3

	h := models.ProductHistory{
		ChangeType:     models.ChangeTypeUpdate,
		PreviousValues: prev,
		NewValues:      next,
	}

	changes := h.ChangedFields()
	if len(changes) != 3 {
		t.Fatalf("len(changes) = %d, want 3: %v", len(changes), changes)
	}

	byField := map[string]models.FieldChange{}
	for _, c := range changes {
		byField[c.Field] = c
	}
	if c := byField["name"]; c.OldValue != "Widget" || c.NewValue != "Widget Pro" {
		t.Errorf("name change = %+v", c)
	}
	if c := byField["type"]; c.OldValue != "Sản phẩm" || c.NewValue != "Vật tư" {
		t.Errorf("type change = %+v (labels expected)", c)
	}
	if c := byField["soldQuantity"]; c.OldValue != "0" || c.NewValue != "3" {
		t.Errorf("soldQuantity change = %+v", c)
	}
}

func TestChangedFieldsNoDiffForCreateAndDelete(t *testing.T) {
	create := models.ProductHistory{
		ChangeType: models.ChangeTypeCreate,
		NewValues:  snapshot("80"),
	}
	if changes := create.ChangedFields(); changes != nil {
		t.Errorf("create entry diff = %v, want nil", changes)
	}

	del := models.ProductHistory{
		ChangeType:     models.ChangeTypeDelete,
		PreviousValues: snapshot("80"),
	}
	if changes := del.ChangedFields(); changes != nil {
		t.Errorf("delete entry diff = %v, want nil", changes)
	}
}

func TestChangedFieldsMissingSnapshotIsNoDiff(t *testing.T) {
	h := models.ProductHistory{
		ChangeType: models.ChangeTypeUpdate,
		NewValues:  snapshot("80"),
	}
	if changes := h.ChangedFields(); changes != nil {
		t.Errorf("update entry without previous snapshot diff = %v, want nil", changes)
	}
}
