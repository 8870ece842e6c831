// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-pass-vault")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	keychain := crypto.NewKeyChain()
	codec, err := newCodec(cfg.App.Cipher)
	if err != nil {
		log.Fatal().Err(err).Msg("create codec")
	}

	masterFile := store.NewMasterFile(cfg.Storage.Files.DigestPath, cfg.Storage.Files.SaltPath, keychain, log)
	vaultFile := store.NewVaultFile(cfg.Storage.Files.VaultPath, codec, log)

	services, err := service.NewServices(masterFile, vaultFile, crypto.NewHasher(), keychain, crypto.NewGenerator(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create services")
	}

	ui := tui.New(services, cfg, log)

	vaultApp, err := app.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = vaultApp.Run(); err != nil {
		log.Fatal().Err(err).Msg("app run error")
	}
}

func newCodec(cipher string) (crypto.Codec, error) {
	switch cipher {
	case config.CipherXOR:
		return crypto.NewXORCodec(), nil
	case config.CipherAESGCM:
		return crypto.NewGCMCodec(), nil
	default:
		return nil, fmt.Errorf("unknown cipher %q", cipher)
	}
}

func printBuildInfo() {
	fmt.Println(models.NewBuildInfo(buildVersion, buildDate, buildCommit))
}
