package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worldroam/countries-api/internal/core/ports"
)

// CountriesHandler proxies the public REST Countries API so the SPA talks to
// a single origin. Payloads pass through untouched inside the envelope.
type CountriesHandler struct {
	countries ports.CountriesService
}

func NewCountriesHandler(countries ports.CountriesService) *CountriesHandler {
	return &CountriesHandler{countries: countries}
}

// All returns the full country list.
//
// @Summary      List all countries
// @Tags         countries
// @Produce      json
// @Success      200  {object}  response
// @Failure      502  {object}  response
// @Router       /countries [get]
func (h *CountriesHandler) All(c echo.Context) error {
	data, err := h.countries.All(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Success: true, Data: data})
}

// ByName searches countries by name.
//
// @Summary      Search countries by name
// @Tags         countries
// @Produce      json
// @Param        name  path      string  true  "Country name"
// @Success      200   {object}  response
// @Failure      404   {object}  response
// @Router       /countries/name/{name} [get]
func (h *CountriesHandler) ByName(c echo.Context) error {
	data, err := h.countries.ByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Success: true, Data: data})
}

// ByRegion lists countries in a region.
//
// @Summary      List countries by region
// @Tags         countries
// @Produce      json
// @Param        region  path      string  true  "Region name"
// @Success      200     {object}  response
// @Failure      404     {object}  response
// @Router       /countries/region/{region} [get]
func (h *CountriesHandler) ByRegion(c echo.Context) error {
	data, err := h.countries.ByRegion(c.Request().Context(), c.Param("region"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Success: true, Data: data})
}

// ByCode looks up one country by its alpha code.
//
// @Summary      Get a country by alpha code
// @Tags         countries
// @Produce      json
// @Param        code  path      string  true  "Alpha country code (e.g. USA)"
// @Success      200   {object}  response
// @Failure      404   {object}  response
// @Router       /countries/code/{code} [get]
func (h *CountriesHandler) ByCode(c echo.Context) error {
	data, err := h.countries.ByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Success: true, Data: data})
}
