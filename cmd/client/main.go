// Command client is a debug companion for the vocab-sync server. It mints a
// bearer token locally (or accepts a pre-issued one), pushes a JSON batch
// file, and pulls the full snapshot back, printing server responses to
// stdout. It exists for manual testing against a running server and is not
// part of the mobile application.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-vocab-sync/internal/adapter"
	"github.com/MKhiriev/go-vocab-sync/internal/config"
	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/internal/utils"
	"github.com/MKhiriev/go-vocab-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	var (
		address  = flag.String("a", "localhost:8080", "server address (host:port or full URL)")
		timeout  = flag.Duration("timeout", 15*time.Second, "request timeout")
		token    = flag.String("t", "", "pre-issued bearer token; overrides local minting")
		signKey  = flag.String("k", "", "token sign key for local minting")
		issuer   = flag.String("i", "vocab-sync", "token issuer for local minting")
		uid      = flag.String("u", "", "owner uid for local minting")
		email    = flag.String("email", "", "owner email claim for local minting")
		name     = flag.String("name", "", "owner name claim for local minting")
		duration = flag.Duration("d", time.Hour, "token validity for local minting")
		upsert   = flag.Bool("upsert", false, "upsert the owner profile before other calls")
		pushFile = flag.String("push", "", "path to a JSON batch file to push")
		pull     = flag.Bool("pull", false, "pull the full snapshot and print it")
	)
	flag.Parse()

	log := logger.NewLogger("vocab-sync-client")

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    *address,
		RequestTimeout: *timeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	bearer := *token
	if bearer == "" {
		bearer, err = utils.GenerateJWTToken(*issuer, models.AuthUser{
			UID:   *uid,
			Email: *email,
			Name:  *name,
		}, *duration, *signKey)
		if err != nil {
			log.Fatal().Err(err).Msg("mint token; pass -t or provide -k and -u")
		}
	}
	serverAdapter.SetToken(bearer)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *upsert {
		user, err := serverAdapter.UpsertProfile(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("upsert profile")
		}
		printJSON(user)
	}

	if *pushFile != "" {
		batch, err := readBatchFile(*pushFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", *pushFile).Msg("read batch file")
		}

		resp, err := serverAdapter.Push(ctx, batch)
		if err != nil {
			log.Fatal().Err(err).Msg("push batch")
		}
		printJSON(resp)
	}

	if *pull {
		resp, err := serverAdapter.Pull(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("pull snapshot")
		}
		printJSON(resp)
	}

	if !*upsert && *pushFile == "" && !*pull {
		log.Warn().Msg("nothing to do; pass -upsert, -push or -pull")
	}
}

func readBatchFile(path string) (models.PushRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.PushRequest{}, err
	}

	var batch models.PushRequest
	if err = json.Unmarshal(data, &batch); err != nil {
		return models.PushRequest{}, fmt.Errorf("decode batch file: %w", err)
	}
	return batch, nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(out))
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
