package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK        = "ok"
	statusRecording = "recording"
	statusPaused    = "paused"
)

// recordingResponse is the body of every /recording endpoint.
type recordingResponse struct {
	// Status is "recording" or "paused" after the call.
	Status string `json:"status" example:"recording"`
	// Changed is false when the call found the recorder already in that state.
	Changed   bool `json:"changed"`
	Recording bool `json:"recording"`
}

// pulseResponse is the body of /vitals/pulse.
type pulseResponse struct {
	BPM int `json:"bpm" example:"95"`
}

func recordingStatus(on bool) string {
	if on {
		return statusRecording
	}
	return statusPaused
}

func (h *Handler) respondRecording(c *gin.Context, changed bool) {
	on := h.services.Recording()
	c.JSON(http.StatusOK, recordingResponse{
		Status:    recordingStatus(on),
		Changed:   changed,
		Recording: on,
	})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Current vitals
// @Description  Recording flag, displayed pulse rate and the rolling ECG window (oldest first)
// @Tags         vitals
// @Produce      json
// @Success      200  {object}  models.VitalsSnapshot
// @Router       /api/v1/vitals [get]
func (h *Handler) getVitals(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Snapshot())
}

// @Summary      ECG window
// @Tags         vitals
// @Produce      json
// @Success      200  {array}  models.Sample
// @Router       /api/v1/vitals/ecg [get]
func (h *Handler) getECG(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Snapshot().ECG)
}

// @Summary      Pulse rate
// @Tags         vitals
// @Produce      json
// @Success      200  {object}  pulseResponse
// @Router       /api/v1/vitals/pulse [get]
func (h *Handler) getPulse(c *gin.Context) {
	c.JSON(http.StatusOK, pulseResponse{BPM: h.services.Pulse()})
}

// @Summary      HRV trend
// @Description  24 hourly bars, generated once at startup
// @Tags         vitals
// @Produce      json
// @Success      200  {array}  models.HRVBar
// @Router       /api/v1/vitals/hrv [get]
func (h *Handler) getHRV(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.HRV())
}

// @Summary      Vitals grid
// @Tags         vitals
// @Produce      json
// @Success      200  {array}  models.VitalCard
// @Router       /api/v1/vitals/cards [get]
func (h *Handler) getCards(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Cards())
}

// @Summary      Recording state
// @Tags         recording
// @Produce      json
// @Success      200  {object}  recordingResponse
// @Router       /api/v1/recording [get]
func (h *Handler) getRecording(c *gin.Context) {
	h.respondRecording(c, false)
}

// @Summary      Start recording
// @Description  No-op when already recording
// @Tags         recording
// @Produce      json
// @Success      200  {object}  recordingResponse
// @Router       /api/v1/recording/start [post]
func (h *Handler) startRecording(c *gin.Context) {
	h.respondRecording(c, h.services.Recorder.Start(c.Request.Context()))
}

// @Summary      Pause recording
// @Description  No-op when already paused; the ECG window is kept
// @Tags         recording
// @Produce      json
// @Success      200  {object}  recordingResponse
// @Router       /api/v1/recording/pause [post]
func (h *Handler) pauseRecording(c *gin.Context) {
	h.respondRecording(c, h.services.Recorder.Pause(c.Request.Context()))
}

// @Summary      Toggle recording
// @Tags         recording
// @Produce      json
// @Success      200  {object}  recordingResponse
// @Router       /api/v1/recording/toggle [post]
func (h *Handler) toggleRecording(c *gin.Context) {
	h.services.Recorder.Toggle(c.Request.Context())
	h.respondRecording(c, true)
}
