package api

import (
	"net/http"

	"purchase-approval/internal/domain/purchase"
	reqdto "purchase-approval/internal/handler/dto/request"
	resdto "purchase-approval/internal/handler/dto/response"
	"purchase-approval/internal/handler/httperr"
	"purchase-approval/internal/handler/middleware"
	"purchase-approval/internal/pkg/errs"
	"purchase-approval/internal/usecase/commands"
	"purchase-approval/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgCreated  = "Purchase request created"
	msgApproved = "Purchase request approved"
	msgRejected = "Purchase request rejected"
)

type PurchaseRequestHandler struct {
	commands commands.PurchaseRequestCommands
	queries  queries.PurchaseRequestQueries
}

func NewPurchaseRequestHandler(cmds commands.PurchaseRequestCommands, qs queries.PurchaseRequestQueries) *PurchaseRequestHandler {
	return &PurchaseRequestHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary List my purchase requests
// @Description Every request the caller created, newest first. An empty list is not an error.
// @Tags purchase-requests
// @Produce json
// @Success 200 {array} resdto.PurchaseRequestResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /my-purchase-requests [get]
func (h *PurchaseRequestHandler) ListMine(c *gin.Context) {
	caller, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, errs.ErrUnauthenticated)
		return
	}

	views, err := h.queries.ListMine(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromViews(views))
}

// @Summary List pending purchase requests
// @Description Pending requests assigned to the caller as approver, oldest first.
// @Tags purchase-requests
// @Produce json
// @Success 200 {array} resdto.PurchaseRequestResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /pending-purchase-requests [get]
func (h *PurchaseRequestHandler) ListPending(c *gin.Context) {
	caller, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, errs.ErrUnauthenticated)
		return
	}

	views, err := h.queries.ListPending(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromViews(views))
}

// @Summary Get purchase request
// @Description A request is visible to its requester and its approver only.
// @Tags purchase-requests
// @Produce json
// @Param id path string true "Purchase request ID"
// @Success 200 {object} resdto.PurchaseRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /purchase-requests/{id} [get]
func (h *PurchaseRequestHandler) Get(c *gin.Context) {
	caller, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, errs.ErrUnauthenticated)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, purchase.ErrInvalidRequestID)
		return
	}

	view, err := h.queries.Get(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromView(view))
}

// @Summary Create purchase request
// @Description Creates a Pending request owned by the caller and notifies both parties.
// @Tags purchase-requests
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePurchaseRequestRequest true "Purchase request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /purchase-request [post]
func (h *PurchaseRequestHandler) Create(c *gin.Context) {
	caller, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, errs.ErrUnauthenticated)
		return
	}

	var req reqdto.CreatePurchaseRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := h.commands.Create(c.Request.Context(), caller, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{
		Message:    msgCreated,
		NewRequest: resdto.FromEntity(created),
	})
}

// @Summary Approve purchase request
// @Description Approves a Pending request assigned to the caller, by id or item name.
// @Tags purchase-requests
// @Accept json
// @Produce json
// @Param request body reqdto.DecideRequest true "Target request"
// @Success 200 {object} resdto.ApproveResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /approve-purchase-request [post]
func (h *PurchaseRequestHandler) Approve(c *gin.Context) {
	target, ok := bindDecideTarget(c)
	if !ok {
		return
	}
	h.decide(c, target, purchase.DecisionApprove)
}

// @Summary Reject purchase request
// @Description Rejects a Pending request assigned to the caller, by id or item name.
// @Tags purchase-requests
// @Accept json
// @Produce json
// @Param request body reqdto.DecideRequest true "Target request"
// @Success 200 {object} resdto.RejectResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reject-purchase-request [post]
func (h *PurchaseRequestHandler) Reject(c *gin.Context) {
	target, ok := bindDecideTarget(c)
	if !ok {
		return
	}
	h.decide(c, target, purchase.DecisionReject)
}

// @Summary Approve purchase request by id
// @Tags purchase-requests
// @Produce json
// @Param id path string true "Purchase request ID"
// @Success 200 {object} resdto.ApproveResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /purchase-requests/{id}/approve [post]
func (h *PurchaseRequestHandler) ApproveByID(c *gin.Context) {
	target, ok := pathTarget(c)
	if !ok {
		return
	}
	h.decide(c, target, purchase.DecisionApprove)
}

// @Summary Reject purchase request by id
// @Tags purchase-requests
// @Produce json
// @Param id path string true "Purchase request ID"
// @Success 200 {object} resdto.RejectResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /purchase-requests/{id}/reject [post]
func (h *PurchaseRequestHandler) RejectByID(c *gin.Context) {
	target, ok := pathTarget(c)
	if !ok {
		return
	}
	h.decide(c, target, purchase.DecisionReject)
}

func (h *PurchaseRequestHandler) decide(c *gin.Context, target commands.DecisionTarget, decision purchase.Decision) {
	caller, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, errs.ErrUnauthenticated)
		return
	}

	decided, err := h.commands.Decide(c.Request.Context(), caller, target, decision)
	if err != nil {
		respondError(c, err)
		return
	}

	body := resdto.FromEntity(decided)
	if decision == purchase.DecisionApprove {
		c.JSON(http.StatusOK, resdto.ApproveResponse{Message: msgApproved, RequestToApprove: body})
		return
	}
	c.JSON(http.StatusOK, resdto.RejectResponse{Message: msgRejected, RequestToReject: body})
}

func bindDecideTarget(c *gin.Context) (commands.DecisionTarget, bool) {
	var req reqdto.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return commands.DecisionTarget{}, false
	}
	target, err := req.ToTarget()
	if err != nil {
		respondError(c, err)
		return commands.DecisionTarget{}, false
	}
	return target, true
}

func pathTarget(c *gin.Context) (commands.DecisionTarget, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, purchase.ErrInvalidRequestID)
		return commands.DecisionTarget{}, false
	}
	return commands.DecisionTarget{ID: id}, true
}
