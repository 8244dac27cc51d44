package api

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aysenurmengi/ai-languageExercises/internal/exercise_service/service"
	"github.com/aysenurmengi/ai-languageExercises/internal/models"
	"github.com/aysenurmengi/ai-languageExercises/pkg/logger"
)

// Handler 封装了所有 API endpoint 的处理函数。
type Handler struct {
	service        *service.Service
	uploadsDir     string
	maxUploadBytes int64
	log            *logger.Logger
}

// NewHandler 创建一个新的 Handler 实例。
func NewHandler(s *service.Service, uploadsDir string, maxUploadMB int64, log *logger.Logger) *Handler {
	return &Handler{
		service:        s,
		uploadsDir:     uploadsDir,
		maxUploadBytes: maxUploadMB << 20,
		log:            log,
	}
}

// saveUpload writes the multipart "file" field to a temporary file in the
// uploads directory, preserving the original extension so the loader can be
// selected. The caller must remove the returned path.
func (h *Handler) saveUpload(c *gin.Context) (path, originalName string, err error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", "", &models.ValidationError{Reason: "No file uploaded"}
	}
	if fileHeader.Size > h.maxUploadBytes {
		return "", "", &models.ValidationError{
			Reason: fmt.Sprintf("File exceeds the %d MB size limit", h.maxUploadBytes>>20),
		}
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	path = filepath.Join(h.uploadsDir, uuid.New().String()+ext)
	if err := c.SaveUploadedFile(fileHeader, path); err != nil {
		return "", "", fmt.Errorf("failed to save uploaded file: %w", err)
	}

	return path, fileHeader.Filename, nil
}

// ProcessDocument 处理文档上传，返回提取的文本和内容指纹。
func (h *Handler) ProcessDocument(c *gin.Context) {
	h.log.Info("Processing document request received")

	path, originalName, err := h.saveUpload(c)
	if err != nil {
		respondError(c, "Failed to process document", err)
		return
	}
	// 无论成功还是失败，临时上传文件都会被删除。
	defer os.Remove(path)

	h.log.WithField("file", originalName).Info("File received")

	result, err := h.service.ProcessDocument(c.Request.Context(), path)
	if err != nil {
		respondError(c, "Failed to process document", err)
		return
	}

	message := "File processed successfully"
	if result.FromCache {
		message = "File already processed"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   message,
		"text":      result.Text,
		"fileHash":  result.Fingerprint,
		"fromCache": result.FromCache,
	})
}

// Summarize 处理文档上传并返回全文摘要。
func (h *Handler) Summarize(c *gin.Context) {
	h.log.Info("Summarization request received")

	path, originalName, err := h.saveUpload(c)
	if err != nil {
		respondError(c, "Failed to generate summary", err)
		return
	}
	defer os.Remove(path)

	h.log.WithField("file", originalName).Info("File received")

	text, summary, err := h.service.Summarize(c.Request.Context(), path)
	if err != nil {
		respondError(c, "Failed to generate summary", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"text":     text,
		"summary":  summary,
		"filename": originalName,
	})
}

// AskQuestionRequest 定义了文档问答请求的 JSON 结构。
type AskQuestionRequest struct {
	Question string `json:"question" binding:"required"`
	FileHash string `json:"fileHash"`
}

// AskQuestion 基于已摄取的文档回答自由文本问题。
func (h *Handler) AskQuestion(c *gin.Context) {
	var req AskQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
		return
	}
	if req.FileHash == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File hash is required"})
		return
	}

	h.log.WithField("question", req.Question).Info("Processing question")

	answer, err := h.service.AskQuestion(c.Request.Context(), req.FileHash, req.Question)
	if err != nil {
		respondError(c, "Failed to answer question", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"answer":    answer,
		"fromCache": true,
	})
}

// GenerateImageRequest 定义了图像生成请求的 JSON 结构。
type GenerateImageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// GenerateImage 为给定的提示生成插图，以 data URI 形式返回。
func (h *Handler) GenerateImage(c *gin.Context) {
	var req GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	imageURL, err := h.service.GenerateImage(c.Request.Context(), strings.TrimSpace(req.Prompt))
	if err != nil {
		respondError(c, "Failed to generate image", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}

// GenerateQuestionsRequest 定义了出题请求的 JSON 结构。
type GenerateQuestionsRequest struct {
	Prompt            string `json:"prompt" binding:"required"`
	Level             string `json:"level" binding:"required"`
	NumberOfQuestions int    `json:"numberOfQuestions" binding:"required"`
}

// GenerateQuestions 为给定话题和 CEFR 等级生成选择题。
func (h *Handler) GenerateQuestions(c *gin.Context) {
	var req GenerateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt, level, and number of questions are required"})
		return
	}

	questions, err := h.service.GenerateQuestions(c.Request.Context(), req.Prompt, req.Level, req.NumberOfQuestions)
	if err != nil {
		respondError(c, "Question generation failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// Health 是一个简单的健康检查探针。
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError 将组件级错误映射为 HTTP 状态码和 {error, details} 响应体:
// 客户端输入问题映射到 400, 未知指纹映射到 404, 上游限流映射到 429,
// 其余一律 500。
func respondError(c *gin.Context, message string, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": message, "details": validationErr.Reason})
		return
	}

	if errors.Is(err, models.ErrUnsupportedFormat) ||
		errors.Is(err, models.ErrExtractionFailed) ||
		errors.Is(err, models.ErrEmptyContent) {
		c.JSON(http.StatusBadRequest, gin.H{"error": message, "details": err.Error()})
		return
	}

	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document embeddings not found"})
		return
	}

	var upstreamErr *models.UpstreamError
	if errors.As(err, &upstreamErr) && upstreamErr.StatusCode == http.StatusTooManyRequests {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":   "API rate limit exceeded. Please try again later.",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": message, "details": err.Error()})
}
