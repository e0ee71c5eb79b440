package config

import (
	"encoding/json"
	"os"
	"testing"
)

func TestValidateAndAddDefaults(t *testing.T) {
	cnf := Configuration{}

	err := cnf.validateAndAddDefaults()
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if cnf.ProjectName != "Txflow" {
		t.Errorf("Expected default project name, got %q", cnf.ProjectName)
	}
	if cnf.InputFile != DEFAULT_INPUT_FILE {
		t.Errorf("Expected default input file %s, got %s", DEFAULT_INPUT_FILE, cnf.InputFile)
	}
	if cnf.LogLevel != DEFAULT_LOG_LEVEL {
		t.Errorf("Expected default log level %s, got %s", DEFAULT_LOG_LEVEL, cnf.LogLevel)
	}

	// fields are trimmed and an unknown log level falls back to the default
	cnf = Configuration{
		ProjectName: "  Test Project ",
		InputFile:   " data/transactions.csv ",
		LogLevel:    "loud",
	}
	err = cnf.validateAndAddDefaults()
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if cnf.ProjectName != "Test Project" {
		t.Errorf("Expected trimmed project name, got %q", cnf.ProjectName)
	}
	if cnf.InputFile != "data/transactions.csv" {
		t.Errorf("Expected trimmed input file, got %q", cnf.InputFile)
	}
	if cnf.LogLevel != DEFAULT_LOG_LEVEL {
		t.Errorf("Expected fallback log level %s, got %s", DEFAULT_LOG_LEVEL, cnf.LogLevel)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	// Create a temporary file
	tmpFile, err := os.CreateTemp("", "txflow.json")
	if err != nil {
		t.Fatalf("Unable to create temporary file: %v", err)
	}
	defer os.Remove(tmpFile.Name()) // Clean up after the test

	// Sample configuration to write to the temp file
	sampleConfig := Configuration{
		ProjectName: "Temp Project",
		InputFile:   "temp.csv",
		LogLevel:    "debug",
	}
	if err := json.NewEncoder(tmpFile).Encode(&sampleConfig); err != nil {
		t.Fatalf("Unable to write sample config: %v", err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatalf("Unable to close temp file: %v", err)
	}

	if err := loadConfigFromFile(tmpFile.Name()); err != nil {
		t.Fatalf("Expected config to load, got %v", err)
	}

	cnf, err := Fetch()
	if err != nil {
		t.Fatalf("Expected config to be fetchable, got %v", err)
	}
	if cnf.ProjectName != "Temp Project" {
		t.Errorf("Expected project name from file, got %q", cnf.ProjectName)
	}
	if cnf.InputFile != "temp.csv" {
		t.Errorf("Expected input file from file, got %q", cnf.InputFile)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("TXFLOW_INPUT_FILE", "env.csv")
	t.Setenv("TXFLOW_LOG_LEVEL", "warn")

	if err := loadConfigFromFile("does-not-exist.json"); err != nil {
		t.Fatalf("Expected config to load from env, got %v", err)
	}

	cnf, err := Fetch()
	if err != nil {
		t.Fatalf("Expected config to be fetchable, got %v", err)
	}
	if cnf.InputFile != "env.csv" {
		t.Errorf("Expected env input file, got %q", cnf.InputFile)
	}
	if cnf.LogLevel != "warn" {
		t.Errorf("Expected env log level, got %q", cnf.LogLevel)
	}
}

func TestMockConfig(t *testing.T) {
	MockConfig(&Configuration{ProjectName: "Mocked"})
	cnf, err := Fetch()
	if err != nil {
		t.Fatalf("Expected mocked config, got %v", err)
	}
	if cnf.ProjectName != "Mocked" {
		t.Errorf("Expected mocked project name, got %q", cnf.ProjectName)
	}
}
