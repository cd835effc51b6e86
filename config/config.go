package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Store StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Inventory tunes the variant store.
	Inventory *InventoryConfig `json:"inventory" yaml:"inventory"`

	// Limits feeds the admission engine.
	Limits *LimitsConfig `json:"limits" yaml:"limits"`

	// AutoVoid configures the unclaimed order sweeps and the strike ledger.
	AutoVoid *AutoVoidConfig `json:"autoVoid" yaml:"autoVoid"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for order receipts
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for restock event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Kafka is used when pubsub.provider is "kafka"
	Kafka *KafkaConfig `json:"kafka" yaml:"kafka"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig selects the repository implementation.
type StoreConfig struct {
	// Driver is "postgres" (default) or "memory"
	Driver string `json:"driver" yaml:"driver"`
	// LockTimeout bounds how long a postgres transaction waits for a row lock
	LockTimeout time.Duration `json:"lockTimeout" yaml:"lockTimeout"`
	// AutoMigrate creates or alters the tables on startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// InventoryConfig defines stock status thresholds and the fiscal cycle length
type InventoryConfig struct {
	DefaultReorderPoint int `json:"defaultReorderPoint" yaml:"defaultReorderPoint"`
	CriticalThreshold   int `json:"criticalThreshold" yaml:"criticalThreshold"`
	// Beginning inventory is rolled over once this many days have passed
	CycleDays int `json:"cycleDays" yaml:"cycleDays"`
}

// LimitsConfig defines the cohort defaults and per-item maxima used at order admission
type LimitsConfig struct {
	NewStudentDefault     int `json:"newStudentDefault" yaml:"newStudentDefault"`
	OldStudentDefault     int `json:"oldStudentDefault" yaml:"oldStudentDefault"`
	MonthsPerAcademicYear int `json:"monthsPerAcademicYear" yaml:"monthsPerAcademicYear"`

	ItemLimits []ItemLimitRule `json:"itemLimits" yaml:"itemLimits"`
}

// ItemLimitRule caps the quantity of one item for a cohort.
// Empty EducationLevel, StudentType or Gender match any value.
type ItemLimitRule struct {
	Item           string `json:"item" yaml:"item"`
	EducationLevel string `json:"educationLevel" yaml:"educationLevel"`
	StudentType    string `json:"studentType" yaml:"studentType"`
	Gender         string `json:"gender" yaml:"gender"`
	Max            int    `json:"max" yaml:"max"`
}

// AutoVoidConfig defines the claim windows swept by the scheduler
type AutoVoidConfig struct {
	Enabled         bool       `json:"enabled" yaml:"enabled"`
	StrikeThreshold int        `json:"strikeThreshold" yaml:"strikeThreshold"`
	Long            VoidWindow `json:"long" yaml:"long"`
	Short           VoidWindow `json:"short" yaml:"short"`
	BatchSize       int        `json:"batchSize" yaml:"batchSize"`
}

// VoidWindow is one sweep policy.
type VoidWindow struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Window   time.Duration `json:"window" yaml:"window"`
	Interval time.Duration `json:"interval" yaml:"interval"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google", "kafka" or "noop"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Audience expected on push tokens received by the notifier worker
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// KafkaConfig defines the kafka-go writer settings
type KafkaConfig struct {
	Brokers      []string      `json:"brokers" yaml:"brokers"`
	Topic        string        `json:"topic" yaml:"topic"`
	BatchSize    int           `json:"batchSize" yaml:"batchSize"`
	BatchTimeout time.Duration `json:"batchTimeout" yaml:"batchTimeout"`
	WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	// GroupID is the consumer group of the notifier worker
	GroupID string `json:"groupId" yaml:"groupId"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// POSTGRES_SSLMODE -> postgres.sslMode, aligned with the keys already present in YAML
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills the sections that may be omitted from YAML.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store.Driver == "" {
		cfg.Store.Driver = StoreDriverPostgres
	}
	if cfg.Store.LockTimeout <= 0 {
		cfg.Store.LockTimeout = 5 * time.Second
	}

	if cfg.Inventory == nil {
		cfg.Inventory = &InventoryConfig{}
	}
	if cfg.Inventory.DefaultReorderPoint <= 0 {
		cfg.Inventory.DefaultReorderPoint = 20
	}
	if cfg.Inventory.CriticalThreshold <= 0 {
		cfg.Inventory.CriticalThreshold = 10
	}
	if cfg.Inventory.CycleDays <= 0 {
		cfg.Inventory.CycleDays = 365
	}

	if cfg.Limits == nil {
		cfg.Limits = &LimitsConfig{}
	}
	if cfg.Limits.NewStudentDefault <= 0 {
		cfg.Limits.NewStudentDefault = 8
	}
	if cfg.Limits.OldStudentDefault <= 0 {
		cfg.Limits.OldStudentDefault = 2
	}
	if cfg.Limits.MonthsPerAcademicYear <= 0 {
		cfg.Limits.MonthsPerAcademicYear = 10
	}

	if cfg.AutoVoid == nil {
		cfg.AutoVoid = &AutoVoidConfig{}
	}
	if cfg.AutoVoid.StrikeThreshold <= 0 {
		cfg.AutoVoid.StrikeThreshold = 3
	}
	if cfg.AutoVoid.BatchSize <= 0 {
		cfg.AutoVoid.BatchSize = 200
	}
	if cfg.AutoVoid.Long.Window <= 0 {
		cfg.AutoVoid.Long.Window = 7 * 24 * time.Hour
	}
	if cfg.AutoVoid.Long.Interval <= 0 {
		cfg.AutoVoid.Long.Interval = time.Hour
	}
	if cfg.AutoVoid.Short.Window <= 0 {
		cfg.AutoVoid.Short.Window = 10 * time.Second
	}
	if cfg.AutoVoid.Short.Interval <= 0 {
		cfg.AutoVoid.Short.Interval = 5 * time.Second
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}

	if cfg.Kafka != nil {
		if cfg.Kafka.BatchSize <= 0 {
			cfg.Kafka.BatchSize = 100
		}
		if cfg.Kafka.BatchTimeout <= 0 {
			cfg.Kafka.BatchTimeout = 10 * time.Millisecond
		}
		if cfg.Kafka.WriteTimeout <= 0 {
			cfg.Kafka.WriteTimeout = 5 * time.Second
		}
		if cfg.Kafka.GroupID == "" {
			cfg.Kafka.GroupID = "uniform-notifier"
		}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from POSTGRES_REPLICAS_{index}_{field}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
