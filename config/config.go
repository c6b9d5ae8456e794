// Copyright 2020 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/juju/errors"
	"github.com/spf13/viper"
)

const (
	StoragePOSIX = "posix"
	StorageS3    = "s3"
	StorageGCS   = "gcs"
	StorageAzure = "azure"
)

// Config is the configuration for the command line tool.
type Config struct {
	Import  ImportConfig  `mapstructure:"import"`
	Export  ExportConfig  `mapstructure:"export"`
	Storage StorageConfig `mapstructure:"storage"`
}

// ImportConfig holds the defaults used when a CSV file is loaded.
type ImportConfig struct {
	Nominal []string `mapstructure:"nominal" validate:"dive,required"`
}

// ExportConfig holds the defaults used when a dataset is written.
type ExportConfig struct {
	Format    string `mapstructure:"format" validate:"oneof=csv arff"`
	Separator string `mapstructure:"separator" validate:"len=1"`
}

// StorageConfig selects where exported datasets are written.
type StorageConfig struct {
	Type  string          `mapstructure:"type" validate:"oneof=posix s3 gcs azure"`
	Dir   string          `mapstructure:"dir"`
	S3    S3Config        `mapstructure:"s3"`
	GCS   GCSConfig       `mapstructure:"gcs"`
	Azure AzureBlobConfig `mapstructure:"azure"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Bucket          string `mapstructure:"bucket"`
	Prefix          string `mapstructure:"prefix"`
}

type GCSConfig struct {
	Bucket          string `mapstructure:"bucket"`
	Prefix          string `mapstructure:"prefix"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

type AzureBlobConfig struct {
	ConnectionString string `mapstructure:"connection_string"`
	AccountName      string `mapstructure:"account_name"`
	AccountKey       string `mapstructure:"account_key"`
	Endpoint         string `mapstructure:"endpoint"`
	Container        string `mapstructure:"container"`
	Prefix           string `mapstructure:"prefix"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Export: ExportConfig{
			Format:    "csv",
			Separator: ",",
		},
		Storage: StorageConfig{
			Type: StoragePOSIX,
			Dir:  ".",
		},
	}
}

func setDefault(v *viper.Viper) {
	defaultConfig := GetDefaultConfig()
	// [export]
	v.SetDefault("export.format", defaultConfig.Export.Format)
	v.SetDefault("export.separator", defaultConfig.Export.Separator)
	// [storage]
	v.SetDefault("storage.type", defaultConfig.Storage.Type)
	v.SetDefault("storage.dir", defaultConfig.Storage.Dir)
}

type configBinding struct {
	key string
	env string
}

func bindEnv(v *viper.Viper) error {
	bindings := []configBinding{
		{"import.nominal", "INSTANCES_IMPORT_NOMINAL"},
		{"export.format", "INSTANCES_EXPORT_FORMAT"},
		{"export.separator", "INSTANCES_EXPORT_SEPARATOR"},
		{"storage.type", "INSTANCES_STORAGE_TYPE"},
		{"storage.dir", "INSTANCES_STORAGE_DIR"},
		{"storage.s3.endpoint", "INSTANCES_S3_ENDPOINT"},
		{"storage.s3.access_key_id", "INSTANCES_S3_ACCESS_KEY_ID"},
		{"storage.s3.secret_access_key", "INSTANCES_S3_SECRET_ACCESS_KEY"},
		{"storage.s3.bucket", "INSTANCES_S3_BUCKET"},
		{"storage.s3.prefix", "INSTANCES_S3_PREFIX"},
		{"storage.gcs.bucket", "INSTANCES_GCS_BUCKET"},
		{"storage.gcs.prefix", "INSTANCES_GCS_PREFIX"},
		{"storage.gcs.credentials_file", "INSTANCES_GCS_CREDENTIALS_FILE"},
		{"storage.azure.connection_string", "INSTANCES_AZURE_CONNECTION_STRING"},
		{"storage.azure.account_name", "INSTANCES_AZURE_ACCOUNT_NAME"},
		{"storage.azure.account_key", "INSTANCES_AZURE_ACCOUNT_KEY"},
		{"storage.azure.endpoint", "INSTANCES_AZURE_ENDPOINT"},
		{"storage.azure.container", "INSTANCES_AZURE_CONTAINER"},
		{"storage.azure.prefix", "INSTANCES_AZURE_PREFIX"},
	}
	for _, binding := range bindings {
		if err := v.BindEnv(binding.key, binding.env); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

// LoadConfig loads configuration from a toml file. An empty path loads defaults and environment
// variables only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefault(v)
	if err := bindEnv(v); err != nil {
		return nil, errors.Trace(err)
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Trace(err)
		}
	}
	var config Config
	// lists from environment variables are comma separated
	if err := v.Unmarshal(&config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.StringToTimeDurationHookFunc(),
	))); err != nil {
		return nil, errors.Trace(err)
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &config, nil
}
