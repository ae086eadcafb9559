package controller

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"
	"github.com/pos-labs/product-catalog-service/internal/dto"
	"github.com/pos-labs/product-catalog-service/internal/service"
	"github.com/pos-labs/product-catalog-service/pkg/errs"
	"github.com/pos-labs/product-catalog-service/pkg/response"
	"github.com/rs/zerolog/log"
)

// Object-id convention: exactly 24 hex characters. Anything else is rejected
// here, before the service layer sees it.
var productIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

type Controller struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService) {
	c := Controller{
		service: service,
	}
	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProductByID)
	e.POST("/products", c.AddProduct)
	e.PUT("/products/:id", c.UpdateProduct)
	e.DELETE("/products/:id", c.DeleteProduct)
}

func (c *Controller) GetProducts(e echo.Context) error {
	data, err := c.service.GetProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, data)
}

func (c *Controller) GetProductByID(e echo.Context) error {
	id := e.Param("id")
	if !productIDPattern.MatchString(id) {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	data, err := c.service.GetProductByID(e.Request().Context(), id)
	if err != nil {
		if err == errs.ErrNotFound {
			return e.NoContent(http.StatusNotFound)
		}

		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, data)
}

func (c *Controller) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	created, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	e.Response().Header().Set(echo.HeaderLocation, "/products/"+created.ID)
	return e.JSON(http.StatusCreated, created)
}

func (c *Controller) UpdateProduct(e echo.Context) error {
	id := e.Param("id")
	if !productIDPattern.MatchString(id) {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload.ID = id
	acknowledged, err := c.service.UpdateProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, acknowledged)
}

func (c *Controller) DeleteProduct(e echo.Context) error {
	id := e.Param("id")
	if !productIDPattern.MatchString(id) {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	acknowledged, err := c.service.DeleteProduct(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, acknowledged)
}
