package models_test

import (
	"context"
	"errors"
	"testing"

	"bitbucket.org/mmdatafocus/profit_backend/models"
	"bitbucket.org/mmdatafocus/profit_backend/utils"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeDerived(t *testing.T) {
	p := models.Product{
		ImportPrice:    dec("100"),
		SellPrice:      dec("80"),
		ImportQuantity: 10,
		SoldQuantity:   4,
	}
	p.ComputeDerived()

	if !p.Revenue.Equal(dec("320")) {
		t.Errorf("revenue = %s, want 320", p.Revenue)
	}
	if !p.Cost.Equal(dec("400")) {
		t.Errorf("cost = %s, want 400", p.Cost)
	}
	if !p.Profit.Equal(dec("-80")) {
		t.Errorf("profit = %s, want -80", p.Profit)
	}
	if !p.IsLoss {
		t.Errorf("isLoss = false, want true (sell 80 < import 100)")
	}
}

func TestComputeDerivedZeroSold(t *testing.T) {
	p := models.Product{
		ImportPrice:    dec("100"),
		SellPrice:      dec("150"),
		ImportQuantity: 10,
		SoldQuantity:   0,
	}
	p.ComputeDerived()

	if !p.Revenue.IsZero() || !p.Cost.IsZero() || !p.Profit.IsZero() {
		t.Errorf("derived fields with zero sold = (%s, %s, %s), want all zero", p.Revenue, p.Cost, p.Profit)
	}
	if p.IsLoss {
		t.Errorf("isLoss = true, want false (sell 150 >= import 100)")
	}
}

func TestLossWarningOnlyForProducts(t *testing.T) {
	product := models.Product{Type: models.ProductTypeProduct, ImportPrice: dec("100"), SellPrice: dec("80")}
	if got := product.LossWarning(); got != models.WarningSellBelowImport {
		t.Errorf("product below import price: warning = %q, want %q", got, models.WarningSellBelowImport)
	}

	material := models.Product{Type: models.ProductTypeMaterial, ImportPrice: dec("100"), SellPrice: dec("80")}
	if got := material.LossWarning(); got != "" {
		t.Errorf("material never warns, got %q", got)
	}

	profitable := models.Product{Type: models.ProductTypeProduct, ImportPrice: dec("100"), SellPrice: dec("150")}
	if got := profitable.LossWarning(); got != "" {
		t.Errorf("profitable product should not warn, got %q", got)
	}

	breakEven := models.Product{Type: models.ProductTypeProduct, ImportPrice: dec("100"), SellPrice: dec("100")}
	if got := breakEven.LossWarning(); got != "" {
		t.Errorf("break-even product should not warn, got %q", got)
	}
}

// Invalid input must be rejected before any write is attempted;
// these run with no database connected at all.
func TestCreateProductRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	five := 5
	ten := 10
	negative := -1

	cases := []struct {
		name    string
		input   models.NewProduct
		message string
	}{
		{
			name: "sold exceeds imported",
			input: models.NewProduct{
				Name: "Widget", ImportPrice: dec("10"), SellPrice: dec("20"),
				ImportQuantity: 5, SoldQuantity: &ten,
			},
			message: models.MsgSoldExceedsImport,
		},
		{
			name:    "missing name",
			input:   models.NewProduct{ImportPrice: dec("10"), SellPrice: dec("20"), ImportQuantity: 5},
			message: models.MsgNameRequired,
		},
		{
			name: "negative import price",
			input: models.NewProduct{
				Name: "Widget", ImportPrice: dec("-1"), SellPrice: dec("20"), ImportQuantity: 5,
			},
			message: models.MsgImportPriceNegative,
		},
		{
			name: "negative sell price",
			input: models.NewProduct{
				Name: "Widget", ImportPrice: dec("10"), SellPrice: dec("-3"), ImportQuantity: 5,
			},
			message: models.MsgSellPriceNegative,
		},
		{
			name: "negative import quantity",
			input: models.NewProduct{
				Name: "Widget", ImportPrice: dec("10"), SellPrice: dec("20"), ImportQuantity: -2,
			},
			message: models.MsgImportQtyNegative,
		},
		{
			name: "negative sold quantity",
			input: models.NewProduct{
				Name: "Widget", ImportPrice: dec("10"), SellPrice: dec("20"),
				ImportQuantity: 5, SoldQuantity: &negative,
			},
			message: models.MsgSoldQtyNegative,
		},
		{
			name: "unknown type",
			input: models.NewProduct{
				Name: "Widget", Type: "gadget", ImportPrice: dec("10"), SellPrice: dec("20"),
				ImportQuantity: 10, SoldQuantity: &five,
			},
			message: models.MsgInvalidProductType,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := models.CreateProduct(ctx, &tc.input)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			var ve *utils.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if ve.Message != tc.message {
				t.Errorf("message = %q, want %q", ve.Message, tc.message)
			}
		})
	}
}

func TestSoldEqualToImportedIsAllowedByValidation(t *testing.T) {
	// sold == imported satisfies the invariant; the rejection threshold
	// is strictly greater-than. Reaching the store proves validation
	// passed, so a nil-DB panic here is the expected signal.
	ctx := context.Background()
	five := 5
	input := models.NewProduct{
		Name: "Widget", ImportPrice: dec("10"), SellPrice: dec("20"),
		ImportQuantity: 5, SoldQuantity: &five,
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected write attempt against nil store")
		}
	}()
	if _, err := models.CreateProduct(ctx, &input); err != nil {
		t.Fatalf("validation should accept sold == imported, got %v", err)
	}
}
