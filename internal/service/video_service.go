package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
	"github.com/yourusername/safety-training-api/internal/domain/repository"
	apperrors "github.com/yourusername/safety-training-api/internal/pkg/errors"
)

// Ключ и TTL кеша каталога видео. Каталог меняется редко,
// работники запрашивают его при каждом открытии курса.
const (
	videoCatalogCacheKey = "videos:catalog"
	videoCatalogCacheTTL = 5 * time.Minute
)

// VideoService предоставляет методы для работы с каталогом обучающих видео
type VideoService struct {
	videoRepo repository.VideoRepository
	cacheRepo repository.CacheRepository
	uploadDir string // директория для загрузки файлов
}

// NewVideoService создаёт новый сервис видео
func NewVideoService(videoRepo repository.VideoRepository, cacheRepo repository.CacheRepository, uploadDir string) *VideoService {
	// Создаём директорию для загрузки, если не существует
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		log.Printf("[VideoService] WARNING: не удалось создать директорию %s: %v", uploadDir, err)
	}
	return &VideoService{
		videoRepo: videoRepo,
		cacheRepo: cacheRepo,
		uploadDir: uploadDir,
	}
}

// UploadVideo сохраняет файл на диск и создаёт запись каталога
func (s *VideoService) UploadVideo(file *multipart.FileHeader, sectionName, videoTitle string, sectionOrder, videoOrder int) (*entity.Video, error) {
	sectionName = strings.TrimSpace(sectionName)
	videoTitle = strings.TrimSpace(videoTitle)
	if sectionName == "" || videoTitle == "" {
		return nil, apperrors.ErrValidation
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowedExts := map[string]bool{
		".mp4":  true,
		".webm": true,
		".mov":  true,
	}
	if !allowedExts[ext] {
		return nil, fmt.Errorf("недопустимый формат файла: %s", ext)
	}

	// Генерируем уникальное имя файла
	timestamp := time.Now().UnixNano()
	filename := fmt.Sprintf("video_%d%s", timestamp, ext)
	filePath := filepath.Join(s.uploadDir, filename)

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть загруженный файл: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать файл: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filePath) // Удаляем частично записанный файл
		return nil, fmt.Errorf("не удалось сохранить файл: %w", err)
	}

	video := &entity.Video{
		SectionName:  sectionName,
		VideoTitle:   videoTitle,
		VideoURL:     "/uploads/videos/" + filename,
		SectionOrder: sectionOrder,
		VideoOrder:   videoOrder,
	}

	if err := s.videoRepo.Create(video); err != nil {
		os.Remove(filePath) // Откатываем загрузку
		return nil, fmt.Errorf("не удалось сохранить в БД: %w", err)
	}

	s.invalidateCatalogCache()
	log.Printf("[VideoService] Загружено видео #%d: %s / %s", video.ID, sectionName, videoTitle)
	return video, nil
}

// ListVideos возвращает каталог в порядке (раздел, позиция в разделе).
// Каталог кешируется; промах кеша или недоступный Redis не ломают запрос.
func (s *VideoService) ListVideos() ([]entity.Video, error) {
	var cached []entity.Video
	if err := s.cacheRepo.GetJSON(videoCatalogCacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		log.Printf("[VideoService] WARNING: кеш каталога недоступен: %v", err)
	}

	videos, err := s.videoRepo.ListOrdered()
	if err != nil {
		return nil, err
	}

	if err := s.cacheRepo.SetJSON(videoCatalogCacheKey, videos, videoCatalogCacheTTL); err != nil {
		log.Printf("[VideoService] WARNING: не удалось записать кеш каталога: %v", err)
	}
	return videos, nil
}

// GetVideo возвращает видео по ID
func (s *VideoService) GetVideo(id uint) (*entity.Video, error) {
	return s.videoRepo.GetByID(id)
}

// FilePath возвращает путь к файлу видео на диске для отдачи клиенту
func (s *VideoService) FilePath(video *entity.Video) string {
	return filepath.Join(s.uploadDir, filepath.Base(video.VideoURL))
}

// DeleteVideo удаляет запись каталога и файл с диска
func (s *VideoService) DeleteVideo(id uint) error {
	video, err := s.videoRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.videoRepo.Delete(id); err != nil {
		return err
	}

	if err := os.Remove(s.FilePath(video)); err != nil && !os.IsNotExist(err) {
		log.Printf("[VideoService] WARNING: не удалось удалить файл видео #%d: %v", id, err)
	}

	s.invalidateCatalogCache()
	log.Printf("[VideoService] Удалено видео #%d", id)
	return nil
}

func (s *VideoService) invalidateCatalogCache() {
	if err := s.cacheRepo.Delete(videoCatalogCacheKey); err != nil {
		log.Printf("[VideoService] WARNING: не удалось сбросить кеш каталога: %v", err)
	}
}
