package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// DefaultBatchSize is how many words go into one model request.
	DefaultBatchSize = 20

	// DefaultMaxRetries is the number of attempts per model call.
	DefaultMaxRetries = 3

	// DefaultBaseURL targets DeepSeek's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.deepseek.com"

	// DefaultModel is the chat model used for classification.
	DefaultModel = "deepseek-chat"
)

// Config holds everything the pipeline needs. It is built once at startup and
// passed explicitly into the runner and the model client; nothing reads the
// environment after Load returns.
type Config struct {
	APIKey     string
	BatchSize  int
	MaxRetries int
	BaseURL    string
	Model      string

	// WordlistPath overrides the conventional wordlist locations when set.
	WordlistPath string

	ResultsDir   string
	ErrorsDir    string
	ProgressFile string
	FinalFile    string

	// LogFile enables a rotating file sink next to console output when set.
	LogFile string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present. The DeepSeek API key is required;
// everything else has a default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:       os.Getenv("DEEPSEEK_API_KEY"),
		BaseURL:      DefaultBaseURL,
		Model:        DefaultModel,
		WordlistPath: os.Getenv("WORDLIST"),
		ResultsDir:   "results",
		ErrorsDir:    "errors",
		ProgressFile: "progress.json",
		FinalFile:    "final_results.csv",
		LogFile:      os.Getenv("LOG_FILE"),
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("DEEPSEEK_API_KEY is not set")
	}

	var err error
	if cfg.BatchSize, err = positiveIntEnv("BATCH_SIZE", DefaultBatchSize); err != nil {
		return nil, err
	}
	if cfg.MaxRetries, err = positiveIntEnv("MAX_RETRIES", DefaultMaxRetries); err != nil {
		return nil, err
	}

	if v := os.Getenv("DEEPSEEK_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("DEEPSEEK_MODEL"); v != "" {
		cfg.Model = v
	}

	return cfg, nil
}

func positiveIntEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}
