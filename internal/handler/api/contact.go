package api

import (
	"net/http"

	reqdto "decor-booking/internal/handler/dto/request"
	resdto "decor-booking/internal/handler/dto/response"
	"decor-booking/internal/handler/httperr"
	"decor-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	cmds commands.ContactCommands
}

func NewContactHandler(cmds commands.ContactCommands) *ContactHandler {
	return &ContactHandler{cmds: cmds}
}

// @Summary Contact form
// @Tags public
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Message"
// @Success 200 {object} resdto.InsertResponse
// @Failure 400 {object} httperr.Response
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	id, err := h.cmds.SubmitMessage(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Inserted(id))
}
