// Copyright 2021 gorse Project Authors
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
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	config := GetDefaultConfig()
	assert.NoError(t, config.Validate())

	config = GetDefaultConfig()
	config.Export.Format = "json"
	err := config.Validate()
	assert.True(t, errors.IsNotValid(err))
	assert.Contains(t, err.Error(), "Format")

	config = GetDefaultConfig()
	config.Export.Separator = ";;"
	assert.True(t, errors.IsNotValid(config.Validate()))

	config = GetDefaultConfig()
	config.Import.Nominal = []string{"label", ""}
	assert.True(t, errors.IsNotValid(config.Validate()))

	config = GetDefaultConfig()
	config.Storage.Type = "ftp"
	assert.True(t, errors.IsNotValid(config.Validate()))
}

func TestValidate_Storage(t *testing.T) {
	config := GetDefaultConfig()
	config.Storage.Dir = " "
	assert.True(t, errors.IsNotValid(config.Validate()))

	config = GetDefaultConfig()
	config.Storage.Type = StorageS3
	config.Storage.S3.Endpoint = "localhost:9000"
	assert.True(t, errors.IsNotValid(config.Validate()))
	config.Storage.S3.Bucket = "datasets"
	assert.NoError(t, config.Validate())

	config = GetDefaultConfig()
	config.Storage.Type = StorageGCS
	assert.True(t, errors.IsNotValid(config.Validate()))
	config.Storage.GCS.Bucket = "datasets"
	assert.NoError(t, config.Validate())

	config = GetDefaultConfig()
	config.Storage.Type = StorageAzure
	config.Storage.Azure.Container = "datasets"
	assert.True(t, errors.IsNotValid(config.Validate()))
	config.Storage.Azure.AccountName = "account"
	config.Storage.Azure.AccountKey = "key"
	assert.NoError(t, config.Validate())
	config.Storage.Azure = AzureBlobConfig{ConnectionString: "UseDevelopmentStorage=true"}
	assert.True(t, errors.IsNotValid(config.Validate()))
}
