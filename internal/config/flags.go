package config

import (
	"flag"
)

// parseFlags parses all configuration flags from args (normally
// os.Args[1:]; tests pass their own slices).
//
// Flags:
//
//	-f vault file path
//	-m master digest file path
//	-s key derivation salt file path
//	-cipher at-rest transform: "xor" or "aes-gcm"
//	-length default generated password length
//	-attempts unlock attempt budget
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-pass-vault", flag.ContinueOnError)

	var vaultPath string
	var digestPath string
	var saltPath string
	var cipher string
	var defaultLength int
	var unlockAttempts int
	var jsonConfigPath string

	fs.StringVar(&vaultPath, "f", "", "Vault file path")
	fs.StringVar(&digestPath, "m", "", "Master digest file path")
	fs.StringVar(&saltPath, "s", "", "Key derivation salt file path")
	fs.StringVar(&cipher, "cipher", "", `At-rest transform ("xor" or "aes-gcm")`)
	fs.IntVar(&defaultLength, "length", 0, "Default generated password length")
	fs.IntVar(&unlockAttempts, "attempts", 0, "Unlock attempt budget")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Cipher: cipher,
		},
		Storage: Storage{
			Files: Files{
				VaultPath:  vaultPath,
				DigestPath: digestPath,
				SaltPath:   saltPath,
			},
		},
		Generator: Generator{
			DefaultLength: defaultLength,
		},
		Auth: Auth{
			UnlockAttempts: unlockAttempts,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
