package config

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Storage  StorageConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig содержит унифицированные настройки подключения к Redis
// Поддерживает режимы: single, sentinel, cluster
type RedisConfig struct {
	// Mode: Режим работы Redis ("single", "sentinel", "cluster"). По умолчанию "single".
	Mode string `mapstructure:"mode"`

	// Addrs: Список адресов Redis (хост:порт). Используется для всех режимов.
	Addrs []string `mapstructure:"addrs"`

	// Addr: Альтернативный адрес для режима 'single', если Addrs пустой.
	Addr string `mapstructure:"addr"`

	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// MasterName: Имя мастер-сервера Redis (только для режима "sentinel")
	MasterName string `mapstructure:"master_name"`

	// MaxRetries: Максимальное количество попыток переподключения (-1 - бесконечно).
	MaxRetries int `mapstructure:"max_retries"`

	// MinRetryBackoff: Минимальный интервал между попытками (в миллисекундах).
	MinRetryBackoff int `mapstructure:"min_retry_backoff"`

	// MaxRetryBackoff: Максимальный интервал между попытками (в миллисекундах).
	MaxRetryBackoff int `mapstructure:"max_retry_backoff"`
}

// JWTConfig содержит настройки JWT
type JWTConfig struct {
	Secret        string `mapstructure:"secret"`
	ExpirationHrs int    `mapstructure:"expirationHrs"`
}

// AdminConfig содержит учетные данные администратора по умолчанию.
// Используются только при бутстрапе пустой таблицы admins.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// StorageConfig содержит настройки хранения загруженных файлов
type StorageConfig struct {
	VideoDir string `mapstructure:"video_dir"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Load загружает конфигурацию из файла
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Используем новый экземпляр Viper, чтобы избежать глобального состояния

	// Значения по умолчанию
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.readtimeout", 15)
	vip.SetDefault("server.writetimeout", 15)
	vip.SetDefault("storage.video_dir", "uploads/videos")
	vip.SetDefault("jwt.expirationHrs", 24)

	// Привязываем переменные окружения ЯВНО
	// Привязка для секции Database
	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")

	// Привязка для секции Redis
	vip.BindEnv("redis.mode", "REDIS_MODE")
	vip.BindEnv("redis.addrs", "REDIS_ADDRS")
	vip.BindEnv("redis.addr", "REDIS_ADDR")
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")
	vip.BindEnv("redis.master_name", "REDIS_MASTER_NAME")

	// Привязка для секции JWT
	vip.BindEnv("jwt.secret", "JWT_SECRET")
	vip.BindEnv("jwt.expirationHrs", "JWT_EXPIRATIONHRS")

	// Привязка для секции Admin
	vip.BindEnv("admin.username", "ADMIN_USERNAME")
	vip.BindEnv("admin.password", "ADMIN_PASSWORD")

	// Привязка для Server и Storage
	vip.BindEnv("server.port", "SERVER_PORT")
	vip.BindEnv("storage.video_dir", "STORAGE_VIDEO_DIR")

	// Путь к файлу конфигурации (не страшно, если его нет, т.к. есть BindEnv)
	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Printf("Файл конфигурации '%s' не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				log.Printf("Предупреждение: не удалось прочитать файл конфигурации '%s': %v", configPath, err)
			}
		}
	}

	// Viper объединит значения из файла и привязанных env vars
	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Логирование конфигурации (только в debug режиме)
	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("--- Загруженные значения конфигурации ---")
		log.Printf("Database Host: %s", cfg.Database.Host)
		log.Printf("Database Port: %s", cfg.Database.Port)
		log.Printf("Database Name: %s", cfg.Database.DBName)
		log.Printf("Redis Addr: %s", cfg.Redis.Addr)
		log.Printf("Redis Mode: %s", cfg.Redis.Mode)
		log.Printf("JWT Secret Set: %t", cfg.JWT.Secret != "")
		log.Printf("JWT Expiration Hours: %d", cfg.JWT.ExpirationHrs)
		log.Printf("Server Port: %s", cfg.Server.Port)
		log.Printf("Video Dir: %s", cfg.Storage.VideoDir)
		log.Printf("-----------------------------------------")
	}

	// Проверка обязательных параметров
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT secret is required in config (check JWT_SECRET env var)")
	}
	if cfg.Database.Host == "" || cfg.Database.DBName == "" || cfg.Database.User == "" {
		return nil, fmt.Errorf("database configuration (host, dbname, user) is incomplete in config (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
	}
	if os.Getenv("GIN_MODE") == "release" && cfg.Database.Password == "" {
		return nil, fmt.Errorf("database password is required in release mode (check DATABASE_PASSWORD env var)")
	}

	return &cfg, nil
}
