package api

import (
	"errors"
	"net/http"

	resdto "quality-detailing/internal/handler/dto/response"
	"quality-detailing/internal/pkg/errs"
	"quality-detailing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List services
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalogQueries.ListServices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceViews(services))
}

// @Summary Get service
// @Tags catalog
// @Produce json
// @Param slug path string true "Service slug"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} map[string]string
// @Router /services/{slug} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	service, err := h.catalogQueries.GetServiceBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceView(service))
}

// @Summary List packages for a service
// @Tags catalog
// @Produce json
// @Param slug path string true "Service slug"
// @Success 200 {array} resdto.PackageResponse
// @Failure 404 {object} map[string]string
// @Router /services/{slug}/packages [get]
func (h *CatalogHandler) ListServicePackages(c *gin.Context) {
	service, err := h.catalogQueries.GetServiceBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	packages, err := h.catalogQueries.ListPackages(c.Request.Context(), service.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPackageViews(packages))
}

// @Summary Get package
// @Tags catalog
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /packages/{id} [get]
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid package ID format",
		})
		return
	}

	pkg, err := h.catalogQueries.GetPackage(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPackageNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Package not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPackageView(pkg))
}
