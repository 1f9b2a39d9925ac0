package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shelfward/shelfward/internal/database/settings"
	"github.com/shelfward/shelfward/internal/entities"
)

// SettingsStore defines database operations for the app settings singleton.
type SettingsStore interface {
	GetSettings() (*entities.AppSettings, error)
	UpdateSettings(update settings.Update) (*entities.AppSettings, error)
}

type SettingsController struct {
	store SettingsStore
}

func NewSettingsController(store SettingsStore) *SettingsController {
	return &SettingsController{store: store}
}

// GetSettings returns the current settings.
// GET /api/settings
func (sc *SettingsController) GetSettings(c *gin.Context) {
	current, err := sc.store.GetSettings()
	if err != nil {
		respondInternalError(c, err, "get settings")
		return
	}
	c.JSON(http.StatusOK, current)
}

type updateSettingsRequest struct {
	TTSMode  *string `json:"tts_mode"`
	TTSVoice *string `json:"tts_voice"`
	FontSize *string `json:"font_size"`
	Theme    *string `json:"theme"`
	AutoSync *bool   `json:"auto_sync"`
}

// UpdateSettings applies a partial settings update; omitted fields keep
// their stored values.
// PUT /api/settings
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	update := settings.Update{AutoSync: req.AutoSync}

	if req.TTSMode != nil {
		mode := entities.TTSMode(*req.TTSMode)
		if mode != entities.TTSModeOffline && mode != entities.TTSModeOnline {
			respondBadRequest(c, "invalid tts_mode: "+*req.TTSMode)
			return
		}
		update.TTSMode = &mode
	}
	if req.TTSVoice != nil {
		voice := entities.TTSVoice(*req.TTSVoice)
		if voice != entities.TTSVoiceRobotic && voice != entities.TTSVoiceNatural {
			respondBadRequest(c, "invalid tts_voice: "+*req.TTSVoice)
			return
		}
		update.TTSVoice = &voice
	}
	if req.FontSize != nil {
		size := entities.FontSize(*req.FontSize)
		if size != entities.FontSizeSmall && size != entities.FontSizeMedium && size != entities.FontSizeLarge {
			respondBadRequest(c, "invalid font_size: "+*req.FontSize)
			return
		}
		update.FontSize = &size
	}
	if req.Theme != nil {
		theme := entities.Theme(*req.Theme)
		if theme != entities.ThemeLight && theme != entities.ThemeDark && theme != entities.ThemeSepia {
			respondBadRequest(c, "invalid theme: "+*req.Theme)
			return
		}
		update.Theme = &theme
	}

	updated, err := sc.store.UpdateSettings(update)
	if err != nil {
		respondInternalError(c, err, "update settings")
		return
	}
	c.JSON(http.StatusOK, updated)
}
