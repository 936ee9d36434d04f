package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jimlawless/whereami"
)

const (
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Minio   *MinIOCfg
	Http    *HTTPConfig
	Grpc    *GRPCConfig
	Db      *PGDBCfg
	Redis   *RedisCfg
	Kafka   *KafkaCfg
	Api     *APICfg
	Store   *StoreCfg
	Storage string // redis | postgres | memory
}

type KafkaCfg struct {
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
}

// Enabled: Kafka настроена (заданы брокеры).
func (k *KafkaCfg) Enabled() bool {
	return k != nil && len(k.Brokers) > 0
}

type MinIOCfg struct {
	MinioEndpoint     string        // Адрес конечной точки Minio
	BucketName        string        // Бакет с изображениями товаров
	MinioRootUser     string        // Имя пользователя для доступа к Minio
	MinioRootPassword string        // Пароль для доступа к Minio
	MinioUseSSL       bool          // Подключение по TLS
	ImageURLTTL       time.Duration // Время жизни presigned-ссылки
}

// Enabled: MinIO настроен (задан бакет).
func (m *MinIOCfg) Enabled() bool {
	return m != nil && m.BucketName != ""
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	SwaggerURL   string
}

type GRPCConfig struct {
	Port        string
	NetworkMode string
}

type PGDBCfg struct {
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MigrationsPath string
	MaxConns       int32 // 0: значение pgxpool по умолчанию
}

// Enabled: заданы учетные данные PostgreSQL.
func (p *PGDBCfg) Enabled() bool {
	return p != nil && p.User != "" && p.DBName != ""
}

// DSN строит строку подключения в формате key=value.
func (p *PGDBCfg) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host,
		p.Port,
		p.User,
		p.Password,
		p.DBName,
		p.SSLMode,
	)
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
}

// APICfg: внешний REST API магазина.
type APICfg struct {
	BaseURL       string
	Timeout       time.Duration
	UploadsPrefix string // префикс статических файлов с изображениями
}

// StoreCfg: параметры витрины.
type StoreCfg struct {
	Location       *time.Location
	MinLead        time.Duration // минимальный запас до даты выполнения заказа
	SessionCookie  string
	SessionTTL     time.Duration
	CartTTL        time.Duration
	SecureCookie   bool
	OutboxPollSize int
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	api, err := loadAPICfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	store, err := loadStoreCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	storage := strings.ToLower(getEnvOrDefault("STORAGE_DRIVER", StorageRedis))
	switch storage {
	case StorageRedis, StoragePostgres, StorageMemory:
	default:
		return nil, e.Wrap(storage, e.ErrUnknownStorageDriver)
	}

	db, err := loadPGDBCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if storage == StoragePostgres && !db.Enabled() {
		err := fmt.Errorf("POSTGRES_USER and POSTGRES_DB are required for STORAGE_DRIVER=postgres")
		log.Errorf(err, "missing postgres config")
		return nil, err
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minio, err := loadMinIOCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Minio:   minio,
		Http:    http,
		Grpc:    loadGRPCConfig(),
		Db:      db,
		Redis:   redis,
		Kafka:   kafka,
		Api:     api,
		Store:   store,
		Storage: storage,
	}, nil
}

func loadAPICfg(log logger.Logger) (*APICfg, error) {
	const (
		defaultTimeout       = 10 * time.Second
		defaultUploadsPrefix = "/uploads"
	)

	baseURL := strings.TrimRight(getEnv("API_BASE_URL"), "/")
	if baseURL == "" {
		err := fmt.Errorf("API_BASE_URL is required")
		log.Errorf(err, "missing API_BASE_URL")
		return nil, err
	}

	timeout, err := parseDurationEnv("API_TIMEOUT", defaultTimeout)
	if err != nil {
		log.Errorf(err, "invalid API_TIMEOUT")
		return nil, err
	}

	return &APICfg{
		BaseURL:       baseURL,
		Timeout:       timeout,
		UploadsPrefix: strings.TrimRight(getEnvOrDefault("UPLOADS_PREFIX", defaultUploadsPrefix), "/"),
	}, nil
}

func loadStoreCfg(log logger.Logger) (*StoreCfg, error) {
	const (
		defaultTimezone   = "America/La_Paz"
		defaultMinLead    = time.Hour
		defaultCookie     = "sid"
		defaultSessionTTL = 30 * 24 * time.Hour
		defaultCartTTL    = 30 * 24 * time.Hour
		defaultPollSize   = 10
	)

	loc, err := time.LoadLocation(getEnvOrDefault("STORE_TIMEZONE", defaultTimezone))
	if err != nil {
		log.Errorf(err, "invalid STORE_TIMEZONE")
		return nil, err
	}

	minLead, err := parseDurationEnv("MIN_FULFILLMENT_LEAD", defaultMinLead)
	if err != nil {
		log.Errorf(err, "invalid MIN_FULFILLMENT_LEAD")
		return nil, err
	}

	sessionTTL, err := parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		log.Errorf(err, "invalid SESSION_TTL")
		return nil, err
	}

	cartTTL, err := parseDurationEnv("CART_TTL", defaultCartTTL)
	if err != nil {
		log.Errorf(err, "invalid CART_TTL")
		return nil, err
	}

	secure, err := strconv.ParseBool(getEnvOrDefault("SECURE_COOKIE", "false"))
	if err != nil {
		log.Errorf(err, "invalid SECURE_COOKIE")
		return nil, err
	}

	pollSize, err := parseIntEnv("OUTBOX_BATCH_SIZE", defaultPollSize)
	if err != nil {
		return nil, e.Wrap("OUTBOX_BATCH_SIZE", err)
	}

	return &StoreCfg{
		Location:       loc,
		MinLead:        minLead,
		SessionCookie:  getEnvOrDefault("SESSION_COOKIE", defaultCookie),
		SessionTTL:     sessionTTL,
		CartTTL:        cartTTL,
		SecureCookie:   secure,
		OutboxPollSize: pollSize,
	}, nil
}

func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
		defaultTopic             = "storefront.orders"
	)

	var brokers []string
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("REPLICATION_FACTOR", err)
	}

	return &KafkaCfg{
		Brokers:           brokers,
		Topic:             getEnvOrDefault("KAFKA_TOPIC", defaultTopic),
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL   = false
		defaultEndpoint = "minio:9000"
		defaultURLTTL   = 15 * time.Minute
	)

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	ttl, err := parseDurationEnv("IMAGE_URL_TTL", defaultURLTTL)
	if err != nil {
		log.Errorf(err, "invalid IMAGE_URL_TTL")
		return nil, err
	}

	return &MinIOCfg{
		MinioEndpoint:     getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint),
		BucketName:        getEnv("BUCKET_NAME"),
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
		ImageURLTTL:       ttl,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 15 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		SwaggerURL:   getEnvOrDefault("SWAGGER_URL", "http://localhost:"+port+"/swagger/doc.json"),
	}, nil
}

func loadGRPCConfig() *GRPCConfig {
	const (
		defaultPort        = "8091"
		defaultNetworkMode = "tcp"
	)

	return &GRPCConfig{
		Port:        getEnvOrDefault("GRPC_PORT", defaultPort),
		NetworkMode: getEnvOrDefault("GRPC_NETWORK_MODE", defaultNetworkMode),
	}
}

// loadPGDBCfg читает параметры PostgreSQL; обязательность проверяется в Load.
func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost       = "localhost"
		defaultPort       = "5432"
		defaultSSLMode    = "disable"
		defaultMigrations = "db/migrations"
		defaultMaxConns   = 10
	)

	maxConns, err := parseIntEnv("POSTGRES_MAX_CONNS", defaultMaxConns)
	if err != nil || maxConns < 0 {
		err = e.Wrap("POSTGRES_MAX_CONNS", e.ErrIncorrectEnvVariable)
		log.Errorf(err, "invalid POSTGRES_MAX_CONNS")
		return nil, err
	}

	return &PGDBCfg{
		Host:           getEnvOrDefault("POSTGRES_HOST", defaultHost),
		Port:           getEnvOrDefault("POSTGRES_PORT", defaultPort),
		User:           getEnv("POSTGRES_USER"),
		Password:       getEnv("POSTGRES_PASSWORD"),
		DBName:         getEnv("POSTGRES_DB"),
		SSLMode:        getEnvOrDefault("SSL_MODE", defaultSSLMode),
		MigrationsPath: getEnvOrDefault("MIGRATIONS_PATH", defaultMigrations),
		MaxConns:       int32(maxConns),
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
	)

	dbStr := getEnvOrDefault("REDIS_DB_ID", strconv.Itoa(defaultDB))
	db, err := strconv.Atoi(dbStr)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        getEnvOrDefault("REDIS_ADDR", defaultAddr),
		Password:    getEnv("REDIS_PASSWORD"),
		User:        getEnv("REDIS_USER"),
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
