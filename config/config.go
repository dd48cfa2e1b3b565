package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng:
// cấu hình server, MongoDB và các dịch vụ sinh nội dung bên ngoài.
type Configuration struct {
	InitMode bool   `env:"INITMODE" envDefault:"false"` // Chế độ khởi tạo dữ liệu mẫu
	Address  string `env:"ADDRESS" envDefault:":8080"`  // Địa chỉ server

	// MongoDB
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"` // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`         // Tên cơ sở dữ liệu blog

	// CORS & Rate limit
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// Text Generation Service (OpenAI-compatible chat completions)
	TextGen_BaseURL     string `env:"TEXTGEN_BASE_URL" envDefault:"https://api.openai.com"` // Base URL của dịch vụ sinh văn bản
	TextGen_APIKey      string `env:"TEXTGEN_API_KEY"`                                      // API key của dịch vụ sinh văn bản
	TextGen_Model       string `env:"TEXTGEN_MODEL" envDefault:"gpt-3.5-turbo"`             // Model mặc định
	TextGen_TimeoutSec  int    `env:"TEXTGEN_TIMEOUT_SEC" envDefault:"30"`                  // Timeout cho bước tạo draft (giây)
	Humanize_TimeoutSec int    `env:"HUMANIZE_TIMEOUT_SEC" envDefault:"45"`                 // Timeout cho bước humanize (giây)

	// Image Search Service (Unsplash-compatible)
	ImageSearch_BaseURL    string `env:"IMAGE_SEARCH_BASE_URL" envDefault:"https://api.unsplash.com"` // Base URL của dịch vụ tìm ảnh
	ImageSearch_AccessKey  string `env:"IMAGE_SEARCH_ACCESS_KEY"`                                     // Access key của dịch vụ tìm ảnh
	ImageSearch_TimeoutSec int    `env:"IMAGE_SEARCH_TIMEOUT_SEC" envDefault:"15"`                    // Timeout tìm ảnh (giây)

	// Resilient API client
	ApiClient_MaxAttempts  int `env:"API_CLIENT_MAX_ATTEMPTS" envDefault:"3"`    // Số lần thử tối đa cho mỗi lời gọi ra ngoài
	ApiClient_BaseDelayMs  int `env:"API_CLIENT_BASE_DELAY_MS" envDefault:"500"` // Delay cơ sở giữa các lần retry (ms)

	// Agent orchestrator
	Orchestrator_Enabled        bool    `env:"ORCHESTRATOR_ENABLED" envDefault:"true"`          // Bật/tắt hệ thống agent tự động
	Orchestrator_TickSec        int     `env:"ORCHESTRATOR_TICK_SEC" envDefault:"60"`           // Chu kỳ tick của scheduler (giây)
	Orchestrator_WriteChance    float64 `env:"ORCHESTRATOR_WRITE_CHANCE" envDefault:"0.7"`      // Xác suất mỗi agent viết bài trong job hằng ngày
	Orchestrator_PostsPerAgent  int     `env:"ORCHESTRATOR_POSTS_PER_AGENT" envDefault:"3"`     // Số bài tối đa mỗi agent tương tác trong một lượt
	Orchestrator_RecentPostDays int     `env:"ORCHESTRATOR_RECENT_POST_DAYS" envDefault:"7"`    // Chỉ tương tác với bài viết trong N ngày gần nhất
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			// Tìm thấy thư mục config/env
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
