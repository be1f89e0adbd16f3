package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gauravmalhotra04/raiden-ai/internal/attendance"
	"github.com/gauravmalhotra04/raiden-ai/pkg/response"
)

// Upsert godoc
// @Summary     Record attendance
// @Description Saves the status of a day. A second record for the same date replaces the first.
// @Tags        Attendance
// @Accept      json
// @Produce     json
// @Param       body body upsertReq true "Attendance data"
// @Success     200  {object} upsertResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/attendance [POST]
func (h *handler) Upsert(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpsertReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Upsert(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Upsert: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, upsertResp{Action: out.Action, Record: newRecordResp(out.Record)})
}

// Month godoc
// @Summary     List a month of attendance
// @Tags        Attendance
// @Produce     json
// @Param       year  query int false "Year, defaults to the current year"
// @Param       month query int false "Month 1-12, defaults to the current month"
// @Success     200 {object} monthResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/attendance [GET]
func (h *handler) Month(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMonthReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Month(ctx, attendance.MonthInput{Year: req.Year, Month: req.Month})
	if err != nil {
		h.l.Warnf(ctx, "uc.Month: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newMonthResp(out))
}

// Delete godoc
// @Summary     Delete an attendance record
// @Tags        Attendance
// @Produce     json
// @Param       id path string true "Record ID"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/attendance/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, deleteResp{ID: id})
}

// Export godoc
// @Summary     Export a month of attendance
// @Description Downloads the month as CSV (date,status,notes) or JSON.
// @Tags        Attendance
// @Produce     text/csv
// @Produce     json
// @Param       format query string false "csv (default) or json"
// @Param       year   query int    false "Year"
// @Param       month  query int    false "Month 1-12"
// @Success     200
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/attendance/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Export(ctx, attendance.ExportInput{Format: req.Format, Year: req.Year, Month: req.Month})
	if err != nil {
		h.l.Warnf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.FileName))
	c.Data(http.StatusOK, out.ContentType, out.Body)
}
