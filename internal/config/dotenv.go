package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Keys read from the process environment or ~/.opsearch/.env.
const (
	EnvCatalog      = "OPSEARCH_CATALOG"
	EnvDictionaries = "OPSEARCH_DICTIONARIES"
	EnvMaxResults   = "OPSEARCH_MAX_RESULTS"
)

// DotEnvPath returns the absolute path to the dotenv file (~/.opsearch/.env).
func DotEnvPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".env"), nil
}

// LoadDotEnv reads ~/.opsearch/.env and returns key/value pairs.
//
// Parsing rules:
// - Lines starting with '#' are ignored.
// - Empty lines are ignored.
// - Lines must be of form KEY=VALUE.
// - Whitespace around KEY is trimmed.
// - VALUE is taken as-is (no quote parsing).
func LoadDotEnv() (map[string]string, error) {
	p, err := DotEnvPath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("cannot open dotenv file %s: %w", p, err)
	}
	defer f.Close()

	out := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			continue
		}
		out[k] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read dotenv file %s: %w", p, err)
	}
	return out, nil
}

// GetConfigValue returns the effective value for key, using process environment variables
// first and falling back to ~/.opsearch/.env.
func GetConfigValue(key string) (string, error) {
	if v := os.Getenv(key); v != "" {
		return v, nil
	}
	dotenv, err := LoadDotEnv()
	if err != nil {
		return "", err
	}
	return dotenv[key], nil
}

// ApplyEnv overrides cfg with OPSEARCH_CATALOG, OPSEARCH_DICTIONARIES and
// OPSEARCH_MAX_RESULTS. A catalog override naming a directory replaces
// catalog_dir, anything else replaces catalog_path.
func ApplyEnv(cfg *Config) error {
	dotenv, err := LoadDotEnv()
	if err != nil {
		return err
	}
	get := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return strings.TrimSpace(dotenv[key])
	}

	if v := get(EnvCatalog); v != "" {
		p, err := ExpandPath(v)
		if err != nil {
			return err
		}
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			cfg.CatalogPath, cfg.CatalogDir = "", p
		} else {
			cfg.CatalogPath, cfg.CatalogDir = p, ""
		}
	}
	if v := get(EnvDictionaries); v != "" {
		p, err := ExpandPath(v)
		if err != nil {
			return err
		}
		cfg.DictionariesPath = p
	}
	if v := get(EnvMaxResults); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s=%q is not a positive integer", ErrInvalidConfig, EnvMaxResults, v)
		}
		cfg.MaxResults = n
	}
	return nil
}

// EnsureDotEnvTemplate creates ~/.opsearch/.env if it does not already exist.
//
// The template contains configuration keys with empty values so users can fill
// them in to point opsearch at their own catalog.
func EnsureDotEnvTemplate() error {
	p, err := DotEnvPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(p); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("cannot stat dotenv file %s: %w", p, err)
	}

	body := "" +
		EnvCatalog + "=\n" +
		EnvDictionaries + "=\n" +
		EnvMaxResults + "=\n"

	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		return fmt.Errorf("cannot write dotenv template %s: %w", p, err)
	}
	return nil
}
