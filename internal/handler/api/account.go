package api

import (
	"net/http"

	"decor-booking/internal/domain/account"
	reqdto "decor-booking/internal/handler/dto/request"
	resdto "decor-booking/internal/handler/dto/response"
	"decor-booking/internal/handler/httperr"
	"decor-booking/internal/usecase/commands"
	"decor-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const msgUserExists = "user exists"

type AccountHandler struct {
	cmds commands.AccountCommands
	q    queries.AccountQueries
}

func NewAccountHandler(cmds commands.AccountCommands, q queries.AccountQueries) *AccountHandler {
	return &AccountHandler{cmds: cmds, q: q}
}

// @Summary Register user
// @Description Store a new account with role user. Registering an existing email is a no-op.
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterUserRequest true "Register request"
// @Success 200 {object} resdto.InsertResponse
// @Failure 400 {object} httperr.Response
// @Router /users [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req reqdto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	result, err := h.cmds.Register(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if !result.Created {
		c.JSON(http.StatusOK, resdto.InsertResponse{Message: msgUserExists})
		return
	}
	c.JSON(http.StatusOK, resdto.Inserted(result.ID))
}

// @Summary List accounts
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AccountResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /users [get]
func (h *AccountHandler) List(c *gin.Context) {
	views, err := h.q.ListAccounts(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountViews(views))
}

// @Summary List decorators
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AccountResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /users/decorators [get]
func (h *AccountHandler) ListDecorators(c *gin.Context) {
	views, err := h.q.ListDecorators(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountViews(views))
}

// @Summary Featured decorators
// @Description Up to four active decorators for the public site
// @Tags public
// @Produce json
// @Success 200 {array} resdto.AccountResponse
// @Router /public/decorators [get]
func (h *AccountHandler) PublicDecorators(c *gin.Context) {
	views, err := h.q.PublicDecorators(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountViews(views))
}

// @Summary Promote to decorator
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} resdto.UpdateResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/decorator/{id} [patch]
func (h *AccountHandler) PromoteDecorator(c *gin.Context) {
	h.setRole(c, account.RoleDecorator)
}

// @Summary Demote to user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} resdto.UpdateResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/user/{id} [patch]
func (h *AccountHandler) DemoteUser(c *gin.Context) {
	h.setRole(c, account.RoleUser)
}

func (h *AccountHandler) setRole(c *gin.Context, role account.Role) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	result, err := h.cmds.SetRole(c.Request.Context(), id, role)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUpdateResult(result))
}

// @Summary Change account status
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param request body reqdto.UpdateAccountStatusRequest true "Status"
// @Success 200 {object} resdto.UpdateResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/status/{id} [patch]
func (h *AccountHandler) SetStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateAccountStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	result, err := h.cmds.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUpdateResult(result))
}

// @Summary Resolve role
// @Description Unknown emails and accounts without a stored role resolve to user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email"
// @Success 200 {object} resdto.RoleResponse
// @Failure 401 {object} httperr.Response
// @Router /users/role/{email} [get]
func (h *AccountHandler) Role(c *gin.Context) {
	lookup, err := h.q.RoleOf(c.Request.Context(), c.Param("email"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RoleResponse{Role: lookup.Role.String()})
}

// @Summary Own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email"
// @Success 200 {object} resdto.AccountResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/profile/{email} [get]
func (h *AccountHandler) Profile(c *gin.Context) {
	view, err := h.q.Profile(c.Request.Context(), c.Param("email"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountView(view))
}
