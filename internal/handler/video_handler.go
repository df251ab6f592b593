package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/safety-training-api/internal/service"
)

// VideoHandler обрабатывает запросы каталога видео и прогресса просмотра
type VideoHandler struct {
	videoService    *service.VideoService
	trainingService *service.TrainingService
}

// NewVideoHandler создает новый обработчик видео
func NewVideoHandler(videoService *service.VideoService, trainingService *service.TrainingService) *VideoHandler {
	return &VideoHandler{
		videoService:    videoService,
		trainingService: trainingService,
	}
}

// ListVideos возвращает каталог видео в порядке разделов
// GET /api/videos
func (h *VideoHandler) ListVideos(c *gin.Context) {
	videos, err := h.videoService.ListVideos()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"videos":  videos,
	})
}

// GetProgress возвращает отметки просмотра работника
// GET /api/videos/progress/:worker_id
func (h *VideoHandler) GetProgress(c *gin.Context) {
	workerID := c.MustGet("workerID").(uint)

	progress, err := h.trainingService.ListProgress(workerID)
	if err != nil {
		respondError(c, err)
		return
	}

	eligible, err := h.trainingService.IsEligibleForExam(workerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"progress":     progress,
		"exam_allowed": eligible,
	})
}

// WatchRequest представляет отметку о просмотре видео
type WatchRequest struct {
	WorkerID uint `json:"worker_id" binding:"required"`
	VideoID  uint `json:"video_id" binding:"required"`
}

// MarkWatched отмечает видео просмотренным. Повторная отметка — успех без изменений.
// POST /api/videos/watch
func (h *VideoHandler) MarkWatched(c *gin.Context) {
	var req WatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	if err := h.trainingService.MarkWatched(req.WorkerID, req.VideoID); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Progress saved")
}

// StreamVideo отдает файл видео по ID записи каталога
// GET /api/videos/stream/:id
func (h *VideoHandler) StreamVideo(c *gin.Context) {
	videoID := c.MustGet("videoID").(uint)

	video, err := h.videoService.GetVideo(videoID)
	if err != nil {
		respondError(c, err)
		return
	}

	// http.ServeFile внутри c.File обрабатывает Range-запросы плеера
	c.File(h.videoService.FilePath(video))
}
