// config.go
// Copyright (C) 2024 crossword contributors

// This file implements ambient configuration loading: an optional
// .env file (github.com/joho/godotenv, carried over from GoSkrafl's
// go.mod) supplies defaults that plain process environment variables
// always override, grounded on GoSkrafl go-app/main.go's ACCESS_KEY/
// PORT os.Getenv pattern.

package crossword

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the settings the CLI needs to start a session.
type Config struct {
	DictPath  string
	BoardType string
}

const (
	defaultDictPath  = "dictionaries/ods8.txt"
	defaultBoardType = "standard"
)

// LoadConfig reads a .env file if present (missing is not an error;
// godotenv.Load returns an error in that case which we ignore, the way
// GoSkrafl's server simply falls back to a hardcoded default when
// PORT isn't set) and then resolves settings from the environment.
func LoadConfig() *Config {
	_ = godotenv.Load()
	cfg := &Config{
		DictPath:  defaultDictPath,
		BoardType: defaultBoardType,
	}
	if v := os.Getenv("WORDGEN_DICT_PATH"); v != "" {
		cfg.DictPath = v
	}
	if v := os.Getenv("WORDGEN_BOARD_TYPE"); v != "" {
		cfg.BoardType = v
	}
	return cfg
}
