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
	"os"
	"path/filepath"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal(t *testing.T) {
	config, err := LoadConfig("config.toml.template")
	require.NoError(t, err)
	// [import]
	assert.Equal(t, []string{"label"}, config.Import.Nominal)
	// [export]
	assert.Equal(t, "csv", config.Export.Format)
	assert.Equal(t, ",", config.Export.Separator)
	// [storage]
	assert.Equal(t, StorageS3, config.Storage.Type)
	assert.Equal(t, "/tmp/instances", config.Storage.Dir)
	// [storage.s3]
	assert.Equal(t, "s3.amazonaws.com", config.Storage.S3.Endpoint)
	assert.Equal(t, "datasets", config.Storage.S3.Bucket)
	assert.Equal(t, "instances", config.Storage.S3.Prefix)
	// [storage.gcs]
	assert.Empty(t, config.Storage.GCS.Bucket)
	// [storage.azure]
	assert.Empty(t, config.Storage.Azure.Container)
}

func TestSetDefault(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), config)
}

func TestBindEnv(t *testing.T) {
	variables := []struct {
		key   string
		value string
	}{
		{"INSTANCES_IMPORT_NOMINAL", "label,class"},
		{"INSTANCES_EXPORT_FORMAT", "arff"},
		{"INSTANCES_EXPORT_SEPARATOR", ";"},
		{"INSTANCES_STORAGE_TYPE", "gcs"},
		{"INSTANCES_GCS_BUCKET", "bucket"},
		{"INSTANCES_GCS_PREFIX", "prefix"},
		{"INSTANCES_GCS_CREDENTIALS_FILE", "/etc/credentials.json"},
		{"INSTANCES_S3_ACCESS_KEY_ID", "access_key"},
		{"INSTANCES_AZURE_CONTAINER", "container"},
	}
	for _, variable := range variables {
		t.Setenv(variable.key, variable.value)
	}

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, []string{"label", "class"}, config.Import.Nominal)
	assert.Equal(t, "arff", config.Export.Format)
	assert.Equal(t, ";", config.Export.Separator)
	assert.Equal(t, StorageGCS, config.Storage.Type)
	assert.Equal(t, "bucket", config.Storage.GCS.Bucket)
	assert.Equal(t, "prefix", config.Storage.GCS.Prefix)
	assert.Equal(t, "/etc/credentials.json", config.Storage.GCS.CredentialsFile)
	assert.Equal(t, "access_key", config.Storage.S3.AccessKeyID)
	assert.Equal(t, "container", config.Storage.Azure.Container)
}

func TestLoadConfig_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[export]\nformat = \"arff\"\n"), 0o644))
	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "arff", config.Export.Format)
	// unset keys keep defaults
	assert.Equal(t, ",", config.Export.Separator)
	assert.Equal(t, StoragePOSIX, config.Storage.Type)

	// environment variables take precedence over the file
	t.Setenv("INSTANCES_EXPORT_FORMAT", "csv")
	config, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "csv", config.Export.Format)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	t.Setenv("INSTANCES_EXPORT_FORMAT", "json")
	_, err = LoadConfig("")
	assert.True(t, errors.IsNotValid(err))
}
