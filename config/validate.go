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
	"slices"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/juju/errors"
	"github.com/samber/lo"
)

// Validate checks field constraints and the settings required by the selected storage.
func (config *Config) Validate() error {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return errors.Trace(err)
	}
	if err := validate.Struct(config); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := lo.Values(validationErrors.Translate(trans))
			return errors.NotValidf("%s", strings.Join(lo.Uniq(sortedStrings(messages)), "; "))
		}
		return errors.Trace(err)
	}
	return config.Storage.validate()
}

func (s *StorageConfig) validate() error {
	switch s.Type {
	case StoragePOSIX:
		return validateNotEmpty("storage.dir", s.Dir)
	case StorageS3:
		return firstError(
			validateNotEmpty("storage.s3.endpoint", s.S3.Endpoint),
			validateNotEmpty("storage.s3.bucket", s.S3.Bucket))
	case StorageGCS:
		return validateNotEmpty("storage.gcs.bucket", s.GCS.Bucket)
	case StorageAzure:
		if s.Azure.ConnectionString == "" && (s.Azure.AccountName == "" || s.Azure.AccountKey == "") {
			return errors.NotValidf("azure storage requires `storage.azure.connection_string` or both " +
				"`storage.azure.account_name` and `storage.azure.account_key`")
		}
		return validateNotEmpty("storage.azure.container", s.Azure.Container)
	}
	return nil
}

func validateNotEmpty(name, val string) error {
	if strings.TrimSpace(val) == "" {
		return errors.NotValidf("value of `%s` in config must not be empty", name)
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func sortedStrings(s []string) []string {
	sorted := append([]string(nil), s...)
	slices.Sort(sorted)
	return sorted
}
