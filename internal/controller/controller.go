package controller

import (
	"net/http"
	"strconv"

	"github.com/ecommerce-catalog/catalog-service/internal/dto"
	"github.com/ecommerce-catalog/catalog-service/internal/service"
	"github.com/ecommerce-catalog/catalog-service/pkg/errs"
	"github.com/ecommerce-catalog/catalog-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService) {
	c := Controller{
		service: service,
	}
	e.GET("/products", c.SearchProducts)
	e.GET("/products/categories", c.GetCategories)
	e.GET("/products/brands", c.GetBrands)
	e.GET("/products/:id", c.GetProductByID)
}

func (c *Controller) GetProductByID(e echo.Context) error {
	id := e.Param("id")

	product, err := c.service.FindByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, product)
}

func (c *Controller) SearchProducts(e echo.Context) error {
	filter := dto.ProductSearchFilter{}
	if err := e.Bind(&filter); err != nil {
		log.Error().Err(err).Str("component", "SearchProducts").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	page, err := queryIntParam(e, "page", 0)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	size, err := queryIntParam(e, "size", 20)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	sortBy := e.QueryParam("sortBy")
	sortDirection := e.QueryParam("sortDirection")

	result, err := c.service.SearchProducts(e.Request().Context(), filter, page, size, sortBy, sortDirection)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, result)
}

func (c *Controller) GetCategories(e echo.Context) error {
	categories, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, categories)
}

func (c *Controller) GetBrands(e echo.Context) error {
	brands, err := c.service.GetBrands(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, brands)
}

func queryIntParam(e echo.Context, name string, defaultValue int) (int, error) {
	raw := e.QueryParam(name)
	if raw == "" {
		return defaultValue, nil
	}

	return strconv.Atoi(raw)
}
