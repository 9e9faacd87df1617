package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"bitbucket.org/mmdatafocus/profit_backend/models"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportProducts streams the whole inventory, derived columns included,
// as an XLSX workbook.
func ExportProducts(c *gin.Context) {
	products, err := models.ListAllProducts(c.Request.Context())
	if err != nil {
		respondServerError(c, err)
		return
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"id",
		"name",
		"type",
		"import_price",
		"sell_price",
		"import_quantity",
		"sold_quantity",
		"revenue",
		"cost",
		"profit",
		"is_loss",
		"created_at",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		respondServerError(c, err)
		return
	}

	row := 2
	for _, p := range products {
		values := []interface{}{
			p.ID.String(),
			p.Name,
			p.Type,
			p.ImportPrice.String(),
			p.SellPrice.String(),
			p.ImportQuantity,
			p.SoldQuantity,
			p.Revenue.String(),
			p.Cost.String(),
			p.Profit.String(),
			p.IsLoss,
			p.CreatedAt.Format(time.RFC3339),
		}
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			respondServerError(c, err)
			return
		}
		row++
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		respondServerError(c, err)
		return
	}

	filename := fmt.Sprintf("products-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
