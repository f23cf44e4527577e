package http

import (
	"github.com/MKhiriev/warm-whisper/internal/config"
	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/internal/service"
)

type Handler struct {
	services *service.Services

	// maxBodyBytes caps the request body size. Signup payloads carry
	// data-URI profile pictures, so the cap is configurable.
	maxBodyBytes int64

	logger *logger.Logger
}

// defaultMaxBodyBytes mirrors the 50mb body limit of the original deployment.
const defaultMaxBodyBytes = 50 << 20

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	maxBodyBytes := cfg.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}
