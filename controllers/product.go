package controllers

import (
	"net/http"

	"bitbucket.org/mmdatafocus/profit_backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetProducts returns every product, newest first, with derived fields.
func GetProducts(c *gin.Context) {
	products, err := models.ListAllProducts(c.Request.Context())
	if err != nil {
		respondServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(products),
		"data":    products,
	})
}

func CreateProduct(c *gin.Context) {
	var input models.NewProduct
	if err := c.ShouldBindJSON(&input); err != nil {
		respondMessage(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	product, err := models.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		respondModelError(c, err, models.MsgProductNotFound)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"warning": warningOrNil(product),
		"data":    product,
	})
}

type updateProductBody struct {
	models.NewProduct
	Note *string `json:"note"`
}

func UpdateProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var body updateProductBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondMessage(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	product, err := models.UpdateProduct(c.Request.Context(), id, &body.NewProduct, body.Note)
	if err != nil {
		respondModelError(c, err, models.MsgProductNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"warning": warningOrNil(product),
		"data":    product,
	})
}

func DeleteProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	if _, err := models.DeleteProduct(c.Request.Context(), id); err != nil {
		respondModelError(c, err, models.MsgProductNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Đã xóa sản phẩm",
		"data":    gin.H{},
	})
}

// parseProductID reads :id. A malformed id can never resolve to a
// product, so it is reported as not found rather than as a bad request.
func parseProductID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondMessage(c, http.StatusNotFound, models.MsgProductNotFound)
		return uuid.Nil, false
	}
	return id, true
}

func warningOrNil(product *models.Product) *string {
	if w := product.LossWarning(); w != "" {
		return &w
	}
	return nil
}
