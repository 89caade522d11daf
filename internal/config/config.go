package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	ZSBMS     ZSBMS     `mapstructure:",squash"`
	ZSBMSSync ZSBMSSync `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Stores    Stores    `mapstructure:",squash"`
	Articles  Articles  `mapstructure:",squash"`
	SecretKey string    `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Path     string `mapstructure:"database_path"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type ZSBMS struct {
	URL            string   `mapstructure:"zsbms_url"`
	Username       string   `mapstructure:"zsbms_username"`
	Password       string   `mapstructure:"zsbms_password"`
	StoreIDs       []string `mapstructure:"zsbms_store_ids"`
	TimeoutSeconds int      `mapstructure:"zsbms_timeout_seconds"`
}

type ZSBMSSync struct {
	CronSchedule        string `mapstructure:"zsbms_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"zsbms_sync_request_delay_seconds"`
	DownloadDir         string `mapstructure:"zsbms_sync_download_dir"`
	Enabled             bool   `mapstructure:"zsbms_sync_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	TokenTTLHours int `mapstructure:"auth_token_ttl_hours"`
}

// Stores guarda os mapeamentos extra "nome no relatório=id da loja".
type Stores struct {
	RawOverrides string            `mapstructure:"store_name_overrides"`
	Overrides    map[string]string `mapstructure:"-"`
}

// Articles guarda aliases extra de artigos "nome=nome canónico", somados à tabela embutida.
type Articles struct {
	RawAliases string            `mapstructure:"article_aliases"`
	Aliases    map[string]string `mapstructure:"-"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_PATH", "data/analytics.db")
	viper.SetDefault("DATABASE_URL", "localhost:5432/analytics?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)

	viper.SetDefault("ZSBMS_URL", "https://zsbms.example.pt")
	viper.SetDefault("ZSBMS_USERNAME", "")
	viper.SetDefault("ZSBMS_PASSWORD", "")
	viper.SetDefault("ZSBMS_STORE_IDS", "")
	viper.SetDefault("ZSBMS_TIMEOUT_SECONDS", 120)

	viper.SetDefault("ZSBMS_SYNC_CRON", "0 6 * * *")         // Todos os dias às 6h da manhã
	viper.SetDefault("ZSBMS_SYNC_REQUEST_DELAY_SECONDS", 1) // 1 segundo entre relatórios
	viper.SetDefault("ZSBMS_SYNC_DOWNLOAD_DIR", "")         // vazio usa o diretório temporário do sistema
	viper.SetDefault("ZSBMS_SYNC_ENABLED", false)

	viper.SetDefault("STORE_NAME_OVERRIDES", "")
	viper.SetDefault("ARTICLE_ALIASES", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.ZSBMS.StoreIDs = compact(config.ZSBMS.StoreIDs)
	config.Stores.Overrides = ParsePairs(config.Stores.RawOverrides)
	config.Articles.Aliases = ParsePairs(config.Articles.RawAliases)
	config.Database.DSN = config.Database.BuildDSN()

	return config, nil
}

// BuildDSN monta a string de conexão conforme o driver configurado.
func (d Database) BuildDSN() string {
	if d.Driver == "postgres" {
		return fmt.Sprintf("postgres://%s:%s@%s", d.User, d.Password, d.URL)
	}

	path := d.Path
	if path == "" {
		path = "data/analytics.db"
	}
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				logrus.Warn("Não foi possível criar o diretório do banco:", err)
			}
		}
	}

	return fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
}

// ParsePairs lê uma lista "chave=valor,chave=valor". Entradas sem "=" ou vazias são ignoradas.
func ParsePairs(raw string) map[string]string {
	overrides := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		name, id, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		name, id = strings.TrimSpace(name), strings.TrimSpace(id)
		if name == "" || id == "" {
			continue
		}
		overrides[name] = id
	}
	return overrides
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
