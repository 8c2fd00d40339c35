package app_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"walletcore/internal/app"
)

func TestNewLogger_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger, err := app.NewLogger(app.LogConfig{Level: "debug", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	logger.With("password", "hunter2").Info("event",
		"mnemonic", "moral volcano",
		"address", "erd1abc",
		slog.Group("key", "secret_key", "deadbeef"),
	)

	out := buf.String()
	for _, leaked := range []string{"hunter2", "moral volcano", "deadbeef"} {
		if strings.Contains(out, leaked) {
			t.Fatalf("log leaked %q: %s", leaked, out)
		}
	}
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("not json: %v", err)
	}
	if rec["address"] != "erd1abc" {
		t.Fatalf("address not logged: %v", rec)
	}
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger, err := app.NewLogger(app.LogConfig{Level: "warn"}, &buf)
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("info logged at warn level: %s", buf.String())
	}
	logger.Warn("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Fatal("warn not logged")
	}
}

func TestNewLogger_Invalid(t *testing.T) {
	if _, err := app.NewLogger(app.LogConfig{Level: "loud"}, &bytes.Buffer{}); err == nil {
		t.Fatal("unknown level accepted")
	}
	if _, err := app.NewLogger(app.LogConfig{Format: "xml"}, &bytes.Buffer{}); err == nil {
		t.Fatal("unknown format accepted")
	}
}
