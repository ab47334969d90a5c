package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/pkg/response"
)

// Login godoc
// @Summary     Log in
// @Description Establishes a session for the submitted email. Credentials are not verified; the call always succeeds.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// Signup godoc
// @Summary     Sign up
// @Description Creates a new identity and establishes a session. Always succeeds.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signupReq true "Account fields"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/auth/signup [POST]
func (h *handler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Signup(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Signup: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// Logout godoc
// @Summary     Log out
// @Description Clears the current session.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, nil)
}

// Session godoc
// @Summary     Current session
// @Description Returns the persisted session state: the user record and the authenticated flag.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/v1/auth/session [GET]
func (h *handler) Session(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Session(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Session: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}
