// Package embedding provides clients for text embedding models.
package embedding

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/meguminnnnnnnnn/go-openai"

	"github.com/aysenurmengi/ai-languageExercises/internal/models"
	"github.com/aysenurmengi/ai-languageExercises/internal/rag/interfaces"
)

// OpenAIModel 是一个用于 OpenAI API 的 Embedding 模型客户端。
type OpenAIModel struct {
	client  *openai.Client // OpenAI 客户端实例。
	model   string         // 要使用的模型名称。
	timeout time.Duration  // 单次调用的超时时间。
}

// NewOpenAIModel 创建一个新的 OpenAIModel 客户端。
func NewOpenAIModel(apiKey, modelName string, timeout time.Duration) *OpenAIModel {
	config := openai.DefaultConfig(apiKey)
	client := openai.NewClientWithConfig(config)
	return &OpenAIModel{client: client, model: modelName, timeout: timeout}
}

// Embed 使用 OpenAI API 为单个文本生成嵌入向量。
func (m *OpenAIModel) Embed(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := m.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return embeddings[0], nil
}

// EmbedBatch 使用 OpenAI API 为一批文本生成嵌入向量。
// 遇到限流 (HTTP 429) 时等待后重试一次，再失败则直接返回错误。
func (m *OpenAIModel) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	req := openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(m.model),
	}

	resp, err := m.createEmbeddings(ctx, req)
	if err != nil {
		upstream := wrapUpstream(err)
		if upstream.StatusCode != http.StatusTooManyRequests {
			return nil, upstream
		}

		select {
		case <-time.After(2 * time.Second):
		case <-ctx.Done():
			return nil, upstream
		}

		resp, err = m.createEmbeddings(ctx, req)
		if err != nil {
			return nil, wrapUpstream(err)
		}
	}

	if len(resp.Data) != len(texts) {
		return nil, &models.UpstreamError{
			Err: fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data)),
		}
	}

	embeddings := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		embeddings[i] = d.Embedding
	}

	return embeddings, nil
}

func (m *OpenAIModel) createEmbeddings(ctx context.Context, req openai.EmbeddingRequest) (openai.EmbeddingResponse, error) {
	callCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.client.CreateEmbeddings(callCtx, req)
}

// wrapUpstream 将 OpenAI 客户端返回的错误转换为带状态码的 UpstreamError。
func wrapUpstream(err error) *models.UpstreamError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &models.UpstreamError{StatusCode: apiErr.HTTPStatusCode, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &models.UpstreamError{StatusCode: reqErr.HTTPStatusCode, Err: err}
	}
	return &models.UpstreamError{Err: err}
}

// 编译时检查，确保 OpenAIModel 实现了 EmbeddingModel 接口
var _ interfaces.EmbeddingModel = (*OpenAIModel)(nil)
