package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig 定义了 HTTP 服务器的配置。
type ServerConfig struct {
	Port           int      `yaml:"port"`           // 监听端口
	AllowedOrigins []string `yaml:"allowedOrigins"` // CORS 允许的来源列表
}

// LoggerConfig 定义了日志记录器的配置。
type LoggerConfig struct {
	Level string `yaml:"level"` // 日志级别 (例如: "info", "debug")
}

// OpenAIConfig 定义了 OpenAI API 的配置。
// API 密钥从环境变量 OPENAI_API_KEY 读取，不写入配置文件。
type OpenAIConfig struct {
	ChatModel      string `yaml:"chatModel"`      // 聊天补全模型 (例如: "gpt-3.5-turbo")
	SummaryModel   string `yaml:"summaryModel"`   // 长文本摘要模型 (例如: "gpt-3.5-turbo-16k")
	EmbeddingModel string `yaml:"embeddingModel"` // 嵌入模型 (例如: "text-embedding-ada-002")
	ImageModel     string `yaml:"imageModel"`     // 图像生成模型 (例如: "dall-e-3")
	TimeoutSeconds int    `yaml:"timeoutSeconds"` // 单次上游调用的超时时间 (秒)
}

// StorageConfig 定义了嵌入缓存和上传文件的存储配置。
type StorageConfig struct {
	Backend       string `yaml:"backend"`       // 缓存后端, "file" 或 "redis"
	EmbeddingsDir string `yaml:"embeddingsDir"` // 嵌入缓存目录 (file 后端)
	UploadsDir    string `yaml:"uploadsDir"`    // 上传文件的临时目录
	MaxUploadMB   int64  `yaml:"maxUploadMB"`   // 上传文件大小上限 (MB)
}

// RedisConfig 定义了 Redis 缓存后端的连接配置。
type RedisConfig struct {
	Address  string `yaml:"address"`  // Redis 服务器地址 (例如: "localhost:6379")
	Password string `yaml:"password"` // Redis 密码
	DB       int    `yaml:"db"`       // Redis 数据库编号
}

// QAConfig 定义了文档问答检索管线的参数。
type QAConfig struct {
	ChunkSize    int `yaml:"chunkSize"`    // 段落最大长度 (字符)
	ChunkOverlap int `yaml:"chunkOverlap"` // 相邻段落的重叠长度 (字符)
	TopK         int `yaml:"topK"`         // 检索的段落数量
}

// SummaryConfig 定义了文档摘要管线的参数。
type SummaryConfig struct {
	ChunkMaxLength int `yaml:"chunkMaxLength"` // 每个摘要分块的最大长度 (字符)
	MaxTokens      int `yaml:"maxTokens"`      // 每次摘要调用的最大 token 数
}

// RateLimiterConfig 定义了 API 限流中间件的配置。
type RateLimiterConfig struct {
	Enabled  bool    `yaml:"enabled"`  // 是否启用限流
	Rate     float64 `yaml:"rate"`     // 每秒生成的令牌数
	Capacity int     `yaml:"capacity"` // 令牌桶容量 (突发大小)
}

// MiddlewareConfig 汇总了所有中间件的配置。
type MiddlewareConfig struct {
	RateLimiter RateLimiterConfig `yaml:"rateLimiter"` // 限流中间件配置
}

// AppConfig 是应用的顶层配置。
type AppConfig struct {
	Server     ServerConfig     `yaml:"server"`
	Logger     LoggerConfig     `yaml:"logger"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Storage    StorageConfig    `yaml:"storage"`
	Redis      RedisConfig      `yaml:"redis"`
	QA         QAConfig         `yaml:"qa"`
	Summary    SummaryConfig    `yaml:"summary"`
	Middleware MiddlewareConfig `yaml:"middleware"`
}

// LoadConfig 从给定路径读取并解析 YAML 配置文件。
func LoadConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// defaultConfig 返回填充了默认值的配置，未在文件中出现的字段保持默认。
func defaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:           5000,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Logger: LoggerConfig{Level: "info"},
		OpenAI: OpenAIConfig{
			ChatModel:      "gpt-3.5-turbo",
			SummaryModel:   "gpt-3.5-turbo-16k",
			EmbeddingModel: "text-embedding-ada-002",
			ImageModel:     "dall-e-3",
			TimeoutSeconds: 60,
		},
		Storage: StorageConfig{
			Backend:       "file",
			EmbeddingsDir: "embeddings",
			UploadsDir:    "uploads",
			MaxUploadMB:   5,
		},
		QA: QAConfig{
			ChunkSize:    1000,
			ChunkOverlap: 200,
			TopK:         20,
		},
		Summary: SummaryConfig{
			ChunkMaxLength: 12000,
			MaxTokens:      1000,
		},
	}
}
