package api

import (
	"net/http"
	"strings"

	reqdto "decor-booking/internal/handler/dto/request"
	resdto "decor-booking/internal/handler/dto/response"
	"decor-booking/internal/handler/httperr"
	"decor-booking/internal/handler/middleware"
	"decor-booking/internal/usecase/access"
	"decor-booking/internal/usecase/commands"
	"decor-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 200 {object} resdto.InsertResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /services [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		abortWithUseCaseError(c, access.ErrUnauthenticated)
		return
	}
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	id, err := h.cmds.CreateService(c.Request.Context(), req.ToCommand(), principal.Email)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Inserted(id))
}

// @Summary Search services
// @Tags services
// @Produce json
// @Param search query string false "Name contains (case-insensitive)"
// @Param category query string false "Exact category"
// @Param min query string false "Minimum price"
// @Param max query string false "Maximum price"
// @Success 200 {array} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Router /services [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	var query reqdto.ServiceSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	minPrice, err := parsePrice(query.Min)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid min price", nil)
		return
	}
	maxPrice, err := parsePrice(query.Max)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid max price", nil)
		return
	}

	views, err := h.q.SearchServices(c.Request.Context(), queries.ServiceFilter{
		Search:   strings.TrimSpace(query.Search),
		Category: strings.TrimSpace(query.Category),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Get service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetService(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Update service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Changed fields"
// @Success 200 {object} resdto.UpdateResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [patch]
func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	result, err := h.cmds.UpdateService(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUpdateResult(result))
}

// @Summary Delete service
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.DeleteResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /services/{id} [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	n, err := h.cmds.DeleteService(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DeleteResponse{Acknowledged: true, DeletedCount: n})
}

func parsePrice(raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
