/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"

	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_PORT             = "5001"
	DEFAULT_TIMEOUT_SECONDS  = 10
	DEFAULT_LEDGER_ACCOUNT   = 8
	DEFAULT_AUXILIARY_ID     = 7
	DEFAULT_AUXILIARY_NAME   = "COMPRAS"
	DEFAULT_MOVEMENT_TYPE    = "CR"
	DEFAULT_RELOAD_DELAY_MS  = 1000
	DEFAULT_DATE_FROM        = "2020-01-01"
	DEFAULT_DATE_TO          = "2030-12-31"
	DEFAULT_PAGE_SIZE        = 10
	DEFAULT_CXC_ACCOUNT      = "1101"
	DEFAULT_CONTRA_ACCOUNT   = "4101"
	DEFAULT_WEBHOOK_QUEUE    = "cxc_webhooks"
	DEFAULT_POST_LOCK_KEY    = "cxc:posting"
	DEFAULT_POST_LOCK_TTL_MS = 60000
)

var ConfigStore atomic.Value

type ServerConfig struct {
	SSL    bool   `json:"ssl" envconfig:"CXC_SERVER_SSL"`
	Domain string `json:"domain" envconfig:"CXC_SERVER_SSL_DOMAIN"`
	Email  string `json:"ssl_email" envconfig:"CXC_SERVER_SSL_EMAIL"`
	Port   string `json:"port" envconfig:"CXC_SERVER_PORT"`
}

// LedgerConfig points at the external bookkeeping service that holds the
// consolidated CxC entries.
type LedgerConfig struct {
	BaseURL          string `json:"base_url" envconfig:"CXC_LEDGER_BASE_URL"`
	APIKey           string `json:"api_key" envconfig:"CXC_LEDGER_API_KEY"`
	TimeoutSeconds   int    `json:"timeout_seconds" envconfig:"CXC_LEDGER_TIMEOUT_SECONDS"`
	AccountID        int    `json:"account_id" envconfig:"CXC_LEDGER_ACCOUNT_ID"`
	MovementType     string `json:"movement_type" envconfig:"CXC_LEDGER_MOVEMENT_TYPE"`
	AuxiliaryID      int    `json:"auxiliary_id" envconfig:"CXC_LEDGER_AUXILIARY_ID"`
	AuxiliaryName    string `json:"auxiliary_name" envconfig:"CXC_LEDGER_AUXILIARY_NAME"`
	IncludeAuxiliary *bool  `json:"include_auxiliary" envconfig:"CXC_LEDGER_INCLUDE_AUXILIARY"`
}

type TransactionSourceConfig struct {
	BaseURL        string `json:"base_url" envconfig:"CXC_SOURCE_BASE_URL"`
	APIKey         string `json:"api_key" envconfig:"CXC_SOURCE_API_KEY"`
	TimeoutSeconds int    `json:"timeout_seconds" envconfig:"CXC_SOURCE_TIMEOUT_SECONDS"`
	// CacheTTLSeconds keeps fetched records in Redis for this long. Zero
	// disables the cache.
	CacheTTLSeconds int `json:"cache_ttl_seconds" envconfig:"CXC_SOURCE_CACHE_TTL_SECONDS"`
}

// EntriesAPIConfig configures the secondary accounting-entries integration
// that books two-line balanced entries for single transactions.
type EntriesAPIConfig struct {
	BaseURL        string `json:"base_url" envconfig:"CXC_ENTRIES_BASE_URL"`
	APIKey         string `json:"api_key" envconfig:"CXC_API_KEY"`
	CxCAccount     string `json:"cxc_account" envconfig:"CUENTA_CXC"`
	ContraAccount  string `json:"contra_account" envconfig:"CUENTA_CONTRA"`
	TimeoutSeconds int    `json:"timeout_seconds" envconfig:"CXC_ENTRIES_TIMEOUT_SECONDS"`
}

type ReconciliationConfig struct {
	DateFrom      string `json:"date_from" envconfig:"CXC_RECONCILIATION_DATE_FROM"`
	DateTo        string `json:"date_to" envconfig:"CXC_RECONCILIATION_DATE_TO"`
	ReloadDelayMs int    `json:"reload_delay_ms" envconfig:"CXC_RECONCILIATION_RELOAD_DELAY_MS"`
	PageSize      int    `json:"page_size" envconfig:"CXC_RECONCILIATION_PAGE_SIZE"`
	LockKey       string `json:"lock_key" envconfig:"CXC_RECONCILIATION_LOCK_KEY"`
	LockTTLMs     int    `json:"lock_ttl_ms" envconfig:"CXC_RECONCILIATION_LOCK_TTL_MS"`
}

type RedisConfig struct {
	Dns           string `json:"dns" envconfig:"CXC_REDIS_DNS"`
	SkipTLSVerify bool   `json:"skip_tls_verify" envconfig:"CXC_REDIS_SKIP_TLS_VERIFY"`
}

type QueueConfig struct {
	WebhookQueue string `json:"webhook_queue" envconfig:"CXC_QUEUE_WEBHOOK_QUEUE"`
}

type RateLimitConfig struct {
	RequestsPerSecond  *float64 `json:"requests_per_second" envconfig:"CXC_RATE_LIMIT_RPS"`
	Burst              *int     `json:"burst" envconfig:"CXC_RATE_LIMIT_BURST"`
	CleanupIntervalSec *int     `json:"cleanup_interval_sec" envconfig:"CXC_RATE_LIMIT_CLEANUP_INTERVAL_SEC"`
}

type SlackWebhook struct {
	WebhookUrl string `json:"webhook_url"`
}

type Notification struct {
	Slack   SlackWebhook `json:"slack"`
	Webhook struct {
		Url     string            `json:"url"`
		Headers map[string]string `json:"headers"`
	} `json:"webhook"`
}

type Configuration struct {
	ProjectName       string                  `json:"project_name" envconfig:"CXC_PROJECT_NAME"`
	EnableTelemetry   bool                    `json:"enable_telemetry" envconfig:"CXC_ENABLE_TELEMETRY"`
	Server            ServerConfig            `json:"server"`
	Ledger            LedgerConfig            `json:"ledger"`
	TransactionSource TransactionSourceConfig `json:"transaction_source"`
	EntriesAPI        EntriesAPIConfig        `json:"entries_api"`
	Reconciliation    ReconciliationConfig    `json:"reconciliation"`
	Redis             RedisConfig             `json:"redis"`
	Queue             QueueConfig             `json:"queue"`
	Notification      Notification            `json:"notification"`
	RateLimit         RateLimitConfig         `json:"rate_limit"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return err
		}

	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	err = envconfig.Process("cxc", &cnf)
	if err != nil {
		return err
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return err
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded from file. Create a json file called cxc.json with your config ❌")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	if cnf.ProjectName == "" {
		log.Println("Warning: Project name is empty. Setting a default name.")
		cnf.ProjectName = "CxC Server"
	}

	// Trim white spaces from fields
	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.Server.Port = strings.TrimSpace(cnf.Server.Port)
	cnf.Ledger.BaseURL = strings.TrimSpace(cnf.Ledger.BaseURL)
	cnf.Ledger.APIKey = strings.TrimSpace(cnf.Ledger.APIKey)
	cnf.TransactionSource.BaseURL = strings.TrimSpace(cnf.TransactionSource.BaseURL)
	cnf.EntriesAPI.BaseURL = strings.TrimSpace(cnf.EntriesAPI.BaseURL)
	cnf.Redis.Dns = strings.TrimSpace(cnf.Redis.Dns)

	if cnf.Ledger.BaseURL == "" {
		log.Println("Error: Ledger base URL is empty. It's a required field.")
		return errors.New("ledger base URL is required")
	}

	if cnf.Ledger.APIKey == "" {
		log.Println("Error: Ledger API key is empty. It's a required field.")
		return errors.New("ledger API key is required")
	}

	if cnf.Server.Port == "" {
		cnf.Server.Port = DEFAULT_PORT
		log.Printf("Warning: Port not specified in config. Setting default port: %s", DEFAULT_PORT)
	}

	cnf.Ledger.applyDefaults()

	if cnf.TransactionSource.TimeoutSeconds <= 0 {
		cnf.TransactionSource.TimeoutSeconds = DEFAULT_TIMEOUT_SECONDS
	}
	if cnf.TransactionSource.BaseURL == "" {
		log.Println("Warning: Transaction source URL is empty. Reconciliation will only show posted entries.")
	}

	if cnf.EntriesAPI.TimeoutSeconds <= 0 {
		cnf.EntriesAPI.TimeoutSeconds = DEFAULT_TIMEOUT_SECONDS
	}
	if cnf.EntriesAPI.CxCAccount == "" {
		cnf.EntriesAPI.CxCAccount = DEFAULT_CXC_ACCOUNT
	}
	if cnf.EntriesAPI.ContraAccount == "" {
		cnf.EntriesAPI.ContraAccount = DEFAULT_CONTRA_ACCOUNT
	}

	cnf.Reconciliation.applyDefaults()

	if cnf.Queue.WebhookQueue == "" {
		cnf.Queue.WebhookQueue = DEFAULT_WEBHOOK_QUEUE
	}

	// Rate limiting is disabled by default (when both RPS and Burst are nil)
	if cnf.RateLimit.RequestsPerSecond != nil && cnf.RateLimit.Burst == nil {
		defaultBurst := 2 * int(*cnf.RateLimit.RequestsPerSecond)
		cnf.RateLimit.Burst = &defaultBurst
		log.Printf("Warning: Rate limit burst not specified. Setting default value: %d", defaultBurst)
	}
	if cnf.RateLimit.RequestsPerSecond == nil && cnf.RateLimit.Burst != nil {
		defaultRPS := float64(*cnf.RateLimit.Burst) / 2
		cnf.RateLimit.RequestsPerSecond = &defaultRPS
		log.Printf("Warning: Rate limit RPS not specified. Setting default value: %.2f", defaultRPS)
	}
	if cnf.RateLimit.CleanupIntervalSec == nil {
		defaultCleanup := 10800 // 3 hours in seconds
		cnf.RateLimit.CleanupIntervalSec = &defaultCleanup
	}

	return nil
}

func (l *LedgerConfig) applyDefaults() {
	if l.TimeoutSeconds <= 0 {
		l.TimeoutSeconds = DEFAULT_TIMEOUT_SECONDS
	}
	if l.AccountID == 0 {
		l.AccountID = DEFAULT_LEDGER_ACCOUNT
	}
	if l.MovementType == "" {
		l.MovementType = DEFAULT_MOVEMENT_TYPE
	}
	if l.AuxiliaryID == 0 {
		l.AuxiliaryID = DEFAULT_AUXILIARY_ID
	}
	if l.AuxiliaryName == "" {
		l.AuxiliaryName = DEFAULT_AUXILIARY_NAME
	}
	if l.IncludeAuxiliary == nil {
		include := true
		l.IncludeAuxiliary = &include
	}
}

func (r *ReconciliationConfig) applyDefaults() {
	if r.DateFrom == "" {
		r.DateFrom = DEFAULT_DATE_FROM
	}
	if r.DateTo == "" {
		r.DateTo = DEFAULT_DATE_TO
	}
	if r.ReloadDelayMs < 0 {
		r.ReloadDelayMs = 0
	} else if r.ReloadDelayMs == 0 {
		r.ReloadDelayMs = DEFAULT_RELOAD_DELAY_MS
	}
	if r.PageSize <= 0 {
		r.PageSize = DEFAULT_PAGE_SIZE
	}
	if r.LockKey == "" {
		r.LockKey = DEFAULT_POST_LOCK_KEY
	}
	if r.LockTTLMs <= 0 {
		r.LockTTLMs = DEFAULT_POST_LOCK_TTL_MS
	}
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
