package handlers

import (
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"foodhub-be/internal/catalog"
	"foodhub-be/internal/service/search"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog
	// ES is optional; when nil the search endpoint serves the in-memory
	// filter instead.
	ES    *elasticsearch.Client
	Index string
}

// ListRestaurants applies the free-text query, cuisine filter and sort
// key from the query string to the static catalog.
func (h *CatalogHandler) ListRestaurants(c echo.Context) error {
	q := catalog.Query{
		Search:  c.QueryParam("q"),
		Cuisine: c.QueryParam("cuisine"),
		SortBy:  c.QueryParam("sort"),
	}
	return c.JSON(http.StatusOK, catalog.Filter(h.Catalog.Restaurants(), q))
}

func (h *CatalogHandler) GetRestaurant(c echo.Context) error {
	r := h.Catalog.RestaurantByID(c.Param("id"))
	if r == nil {
		// Explicit not-found view state, not a fault.
		return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
	}
	return c.JSON(http.StatusOK, r)
}

func (h *CatalogHandler) ListCuisines(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Catalog.Cuisines())
}

// Search serves fuzzy search through Elasticsearch when configured and
// degrades to the catalog filter otherwise.
func (h *CatalogHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing query")
	}

	if h.ES == nil {
		results := catalog.Filter(h.Catalog.Restaurants(), catalog.Query{Search: q})
		return c.JSON(http.StatusOK, echo.Map{"total": len(results), "restaurants": results})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.QueryParam("size"))
	if size <= 0 || size > 100 {
		size = 10
	}

	total, results, err := search.Search(c.Request().Context(), h.ES, h.Index, q, (page-1)*size, size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "restaurants": results})
}
