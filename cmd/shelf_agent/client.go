package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/shelf-agent/internal/capability"
	"github.com/jonathan/shelf-agent/internal/catalog"
	"github.com/jonathan/shelf-agent/internal/config"
	"github.com/jonathan/shelf-agent/internal/types"
)

// sharedProbe is the process-wide capability cell. Every client built by the
// CLI shares it, so the optional-field answer is only probed once per run.
var sharedProbe = capability.NewProbe(catalog.PrivacyField)

// newCatalogClient builds a catalog client from the environment.
func newCatalogClient() (*catalog.Client, *config.Config, error) {
	cfg, err := config.NewFromEnv()
	if err != nil {
		return nil, nil, err
	}

	client := catalog.New(catalog.Config{
		Endpoint: cfg.Endpoint,
		Token:    cfg.Token,
		Timeout:  cfg.Timeout,
		Probe:    sharedProbe,
	})
	return client, cfg, nil
}

// statusNames maps human-friendly shelf status names to status codes.
var statusNames = map[string]int{
	"want":     types.StatusWantToRead,
	"reading":  types.StatusReading,
	"finished": types.StatusFinished,
	"dnf":      types.StatusDidNotFinish,
}

// parseStatus accepts either a status name or a raw status code.
func parseStatus(value string) (int, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if code, ok := statusNames[normalized]; ok {
		return code, nil
	}
	code, err := strconv.Atoi(normalized)
	if err != nil {
		return 0, fmt.Errorf("unknown shelf status %q (use want, reading, finished, dnf or a numeric code)", value)
	}
	return code, nil
}
