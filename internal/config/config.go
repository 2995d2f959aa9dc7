package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cloudwego/eino-ext/components/embedding/ark"
	einoembedding "github.com/cloudwego/eino/components/embedding"
)

// Config aggregates the service configuration.
type Config struct {
	Server ServerConfig
	NLP    NLPConfig
	AI     AIConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		NLP:    loadNLPConfig(),
		AI:     loadAIConfig(),
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow passing ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// NLPConfig points at the local language resources.
type NLPConfig struct {
	// VectorsPath is a GloVe-style word vector file; empty disables the
	// local embedding model.
	VectorsPath string
	// IntentsPath is a JSON intent definition file; empty selects the
	// embedded defaults.
	IntentsPath string
}

func loadNLPConfig() NLPConfig {
	return NLPConfig{
		VectorsPath: strings.TrimSpace(os.Getenv("WORD_VECTORS_PATH")),
		IntentsPath: strings.TrimSpace(os.Getenv("INTENTS_PATH")),
	}
}

// AIConfig describes the optional remote embedding backend.
type AIConfig struct {
	APIKey    string
	AccessKey string
	SecretKey string
	Model     string
	BaseURL   string
	Region    string
}

// Enabled reports whether the required credentials are present.
func (c AIConfig) Enabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// NewEmbedder creates an Ark embedder from the configuration.
func (c AIConfig) NewEmbedder(ctx context.Context) (einoembedding.Embedder, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("ark embedding credentials missing: provide ARK_API_KEY (or AK/SK) and ARK_EMBEDDING_MODEL")
	}

	return ark.NewEmbedder(ctx, &ark.EmbeddingConfig{
		APIKey:    c.APIKey,
		AccessKey: c.AccessKey,
		SecretKey: c.SecretKey,
		Model:     c.Model,
		BaseURL:   c.BaseURL,
		Region:    c.Region,
	})
}

func loadAIConfig() AIConfig {
	return AIConfig{
		APIKey:    strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey: strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey: strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:     strings.TrimSpace(os.Getenv("ARK_EMBEDDING_MODEL")),
		BaseURL:   getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:    getEnvOrDefault("ARK_REGION", "cn-beijing"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
