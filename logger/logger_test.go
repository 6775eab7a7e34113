package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/brandkit/api/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		devMode bool
		want    logrus.Level
	}{
		{"configured level", "warn", false, logrus.WarnLevel},
		{"unknown level falls back to info", "chatty", false, logrus.InfoLevel},
		{"dev mode raises to debug", "info", true, logrus.DebugLevel},
		{"dev mode keeps trace", "trace", true, logrus.TraceLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			viper.Set(config.LogLevel, tt.level)
			viper.Set(config.DevMode, tt.devMode)

			Setup(&bytes.Buffer{})
			if got := logrus.GetLevel(); got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetupJSON(t *testing.T) {
	viper.Reset()
	viper.Set(config.LogJSON, true)
	viper.Set(config.LogLevel, "info")

	var buf bytes.Buffer
	Setup(&buf)
	logrus.WithField("brand_id", "b1").Info("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["brand_id"] != "b1" || entry["msg"] != "hello" {
		t.Errorf("unexpected entry %v", entry)
	}
}
