package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with json tags so a
// configuration file can be decoded without polluting the main struct with
// a second tag set.
type StructuredJSONConfig struct {
	App struct {
		Cipher  string `json:"cipher"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Files struct {
			VaultPath  string `json:"vault_path"`
			DigestPath string `json:"digest_path"`
			SaltPath   string `json:"salt_path"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Generator struct {
		DefaultLength int `json:"default_length"`
	} `json:"generator,omitempty"`

	Auth struct {
		UnlockAttempts int `json:"unlock_attempts"`
	} `json:"auth,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Cipher:  jsonCfg.App.Cipher,
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			Files: Files{
				VaultPath:  jsonCfg.Storage.Files.VaultPath,
				DigestPath: jsonCfg.Storage.Files.DigestPath,
				SaltPath:   jsonCfg.Storage.Files.SaltPath,
			},
		},
		Generator: Generator{
			DefaultLength: jsonCfg.Generator.DefaultLength,
		},
		Auth: Auth{
			UnlockAttempts: jsonCfg.Auth.UnlockAttempts,
		},
	}

	return cfg, nil
}
