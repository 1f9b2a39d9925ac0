package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Speech drives the text-to-speech playback controller.
type Speech interface {
	Speak(text string, naturalVoice bool) error
	Stop() error
	Pause() error
	Resume() error
	IsSpeaking() bool
}

type SpeechController struct {
	speech Speech
}

func NewSpeechController(speech Speech) *SpeechController {
	return &SpeechController{speech: speech}
}

type speakRequest struct {
	Text         string `json:"text" binding:"required"`
	NaturalVoice bool   `json:"natural_voice"`
}

// Speak starts reading the given text aloud. The natural voice requires a
// qualifying subscription.
// POST /api/speech/speak
func (sc *SpeechController) Speak(c *gin.Context) {
	var req speakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "text is required")
		return
	}
	if err := sc.speech.Speak(req.Text, req.NaturalVoice); err != nil {
		respondServiceError(c, err, "speak")
		return
	}
	respondSuccess(c, "speaking")
}

// Stop halts playback.
// POST /api/speech/stop
func (sc *SpeechController) Stop(c *gin.Context) {
	if err := sc.speech.Stop(); err != nil {
		respondInternalError(c, err, "stop speech")
		return
	}
	respondSuccess(c, "stopped")
}

// Pause suspends playback.
// POST /api/speech/pause
func (sc *SpeechController) Pause(c *gin.Context) {
	if err := sc.speech.Pause(); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	respondSuccess(c, "paused")
}

// Resume continues paused playback.
// POST /api/speech/resume
func (sc *SpeechController) Resume(c *gin.Context) {
	if err := sc.speech.Resume(); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	respondSuccess(c, "resumed")
}

// Status reports whether playback is active.
// GET /api/speech/status
func (sc *SpeechController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"speaking": sc.speech.IsSpeaking()})
}
