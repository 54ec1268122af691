package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v2"
)

var ConfigGlobal = DefaultConfig()

type Config struct {
	// account, used by tableStore
	AccessKeyId     string `yaml:"-"`
	AccessKeySecret string `yaml:"-"`

	// azure
	ManagementEndpoint   string `yaml:"managementEndpoint"`
	ManagementApiVersion string `yaml:"managementApiVersion"`
	RegionEndpointFormat string `yaml:"regionEndpointFormat"` // fmt pattern, %s=region
	TokenScope           string `yaml:"tokenScope"`

	// remote call
	HttpTimeout            int     `yaml:"httpTimeout"` // second
	RequestsPerSecond      float64 `yaml:"requestsPerSecond"`
	EndpointKeyConcurrency int     `yaml:"endpointKeyConcurrency"`
	RegionCacheTTL         int     `yaml:"regionCacheTTL"` // second, 0 disable cache
	RegionCacheSize        int     `yaml:"regionCacheSize"`

	// db
	DbSqlite        string `yaml:"dbSqlite"`
	OtsEndpoint     string `yaml:"otsEndpoint"`
	OtsInstanceName string `yaml:"otsInstanceName"`
	OtsTimeToAlive  int    `yaml:"otsTimeToAlive"` // data expired time/second
	OtsMaxVersion   int    `yaml:"otsMaxVersion"`  // data column max version nums
	CatalogSeed     string `yaml:"catalogSeed"`

	// server
	EnableAuth bool   `yaml:"enableAuth"`
	ApiKeyHash string `yaml:"-"`

	// log
	LogRemoteService string `yaml:"logRemoteService"`
	ServerName       string `yaml:"serverName"`
}

func DefaultConfig() *Config {
	return &Config{
		AccessKeyId:            os.Getenv(ACCESS_KEY_ID),
		AccessKeySecret:        os.Getenv(ACCESS_KEY_SECRET),
		ManagementEndpoint:     "https://management.azure.com",
		ManagementApiVersion:   "2019-05-01",
		RegionEndpointFormat:   "https://%s.api.azureml.ms",
		TokenScope:             "https://management.azure.com/.default",
		HttpTimeout:            60,
		EndpointKeyConcurrency: 4,
		RegionCacheSize:        128,
		DbSqlite:               "./sqlite3",
		OtsMaxVersion:          1,
		OtsTimeToAlive:         -1,
		ServerName:             "aml-controller",
	}
}

// InitConfig load config from yaml file, fields absent from the file keep
// their default value. Secrets only come from env.
func InitConfig(fn string) error {
	ConfigGlobal = DefaultConfig()
	if fn != "" {
		data, err := os.ReadFile(fn)
		if err != nil && !os.IsNotExist(err) {
			return err
		}
		if err == nil {
			if err := yaml.Unmarshal(data, ConfigGlobal); err != nil {
				return err
			}
		}
	}
	ConfigGlobal.ApiKeyHash = os.Getenv(API_KEY_HASH)
	if ConfigGlobal.EnableAuth && ConfigGlobal.ApiKeyHash == "" {
		return errors.New("enableAuth set but CONTROLLER_API_KEY_HASH is empty, please check")
	}
	return nil
}

// UseRegionCache region lookups are always fresh unless a ttl is configured
func (c *Config) UseRegionCache() bool {
	return c.RegionCacheTTL > 0
}

func (c *Config) SendLogToRemote() bool {
	return c.LogRemoteService != ""
}
