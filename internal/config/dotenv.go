// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// loadDotEnv loads variables from the .env file at path into the process
// environment. Variables already present in the environment are left as is.
// A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading %s file: %w", path, err)
}
