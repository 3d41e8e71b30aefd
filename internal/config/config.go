// Package config 负责加载和管理应用程序的配置。
package config

import (
	"github.com/spf13/viper"
)

// 全局配置变量，存储从配置文件和环境变量加载的所有设置。
var Conf Config

// Config 是整个应用程序的配置结构体，与 config.yaml 文件结构对应。
// 所有字段均可被环境变量覆盖（见 bindEnvs）。
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

// ServerConfig 存储服务器相关的配置。
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig 存储数据库连接的配置。
type DatabaseConfig struct {
	MySQL MySQLConfig `mapstructure:"mysql"`
}

// MySQLConfig 存储 MySQL 数据库的配置。
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// LLMConfig 存储大语言模型相关的配置。
// APIKey 为空时应用进入未配置状态，生成接口直接返回兜底内容。
type LLMConfig struct {
	APIKey     string              `mapstructure:"api_key"`
	BaseURL    string              `mapstructure:"base_url"`
	Model      string              `mapstructure:"model"`
	Generation LLMGenerationConfig `mapstructure:"generation"`
}

// LLMGenerationConfig 配置生成相关参数。
type LLMGenerationConfig struct {
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// LogConfig 存储日志相关的配置。
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig 存储跨域相关的配置。
type CORSConfig struct {
	FrontendURL string `mapstructure:"frontend_url"`
}

// Init 初始化配置加载。配置文件是可选的：文件不存在时仅依赖默认值与环境变量，
// 保证纯环境变量部署（容器/Serverless）开箱即用。
func Init(configPath string) {
	setDefaults()
	bindEnvs()

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	// 读取失败不是致命错误，默认值 + 环境变量足以启动
	_ = viper.ReadInConfig()

	if err := viper.Unmarshal(&Conf); err != nil {
		panic(err)
	}
}

func setDefaults() {
	viper.SetDefault("server.port", "5000")
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("database.mysql.dsn",
		"root:root@tcp(127.0.0.1:3306)/roasthub?charset=utf8mb4&parseTime=True&loc=Local&timeout=5s")
	viper.SetDefault("llm.base_url", "https://api.x.ai/v1")
	viper.SetDefault("llm.model", "grok-beta")
	viper.SetDefault("llm.generation.temperature", 0.9)
	viper.SetDefault("llm.generation.max_tokens", 2000)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
}

func bindEnvs() {
	_ = viper.BindEnv("server.port", "PORT")
	_ = viper.BindEnv("server.mode", "GIN_MODE")
	_ = viper.BindEnv("database.mysql.dsn", "MYSQL_DSN")
	_ = viper.BindEnv("llm.api_key", "GROK_API_KEY")
	_ = viper.BindEnv("llm.base_url", "GROK_BASE_URL")
	_ = viper.BindEnv("llm.model", "GROK_MODEL")
	_ = viper.BindEnv("log.level", "LOG_LEVEL")
	_ = viper.BindEnv("cors.frontend_url", "FRONTEND_URL")
}
