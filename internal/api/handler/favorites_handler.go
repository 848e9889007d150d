package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worldroam/countries-api/internal/api/metrics"
	"github.com/worldroam/countries-api/internal/core/ports"
)

type FavoritesHandler struct {
	favorites ports.FavoritesService
}

func NewFavoritesHandler(favorites ports.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites}
}

type addFavoriteRequest struct {
	CountryCode string `json:"countryCode"`
}

// List returns the caller's favorites in insertion order.
//
// @Summary      List favorite countries
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response
// @Failure      401  {object}  response
// @Router       /favorites [get]
func (h *FavoritesHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	codes, err := h.favorites.List(c.Request().Context(), user.ID)
	if err != nil {
		metrics.FavoritesOpsTotal.WithLabelValues("list", "error").Inc()
		return err
	}
	metrics.FavoritesOpsTotal.WithLabelValues("list", "success").Inc()

	return c.JSON(http.StatusOK, response{Success: true, Data: codes})
}

// Add appends a country code to the caller's favorites. Adding a code that
// is already present fails; the operation is deliberately not idempotent.
//
// @Summary      Add a favorite country
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addFavoriteRequest  true  "Country code to add"
// @Success      200   {object}  response
// @Failure      400   {object}  response
// @Failure      401   {object}  response
// @Router       /favorites [post]
func (h *FavoritesHandler) Add(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	codes, err := h.favorites.Add(c.Request().Context(), user.ID, req.CountryCode)
	if err != nil {
		metrics.FavoritesOpsTotal.WithLabelValues("add", "error").Inc()
		return err
	}
	metrics.FavoritesOpsTotal.WithLabelValues("add", "success").Inc()

	return c.JSON(http.StatusOK, response{Success: true, Data: codes})
}

// Remove deletes a country code from the caller's favorites.
//
// @Summary      Remove a favorite country
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        countryCode  path      string  true  "3-letter country code"
// @Success      200          {object}  response
// @Failure      400          {object}  response
// @Failure      401          {object}  response
// @Router       /favorites/{countryCode} [delete]
func (h *FavoritesHandler) Remove(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	codes, err := h.favorites.Remove(c.Request().Context(), user.ID, c.Param("countryCode"))
	if err != nil {
		metrics.FavoritesOpsTotal.WithLabelValues("remove", "error").Inc()
		return err
	}
	metrics.FavoritesOpsTotal.WithLabelValues("remove", "success").Inc()

	return c.JSON(http.StatusOK, response{Success: true, Data: codes})
}
