package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig should validate, got %v", err)
	}
	if cfg.Directive.DefaultScope != "server" {
		t.Fatalf("expected default scope server, got %q", cfg.Directive.DefaultScope)
	}
	if cfg.Domain.Name != "config-cert" {
		t.Fatalf("expected stock domain name, got %q", cfg.Domain.Name)
	}
}

func TestValidateRejectsEmptyDomainName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Domain.Name = "   "
	if err := cfg.Validate(); !errors.Is(err, ErrDomainNameRequired) {
		t.Fatalf("expected ErrDomainNameRequired, got %v", err)
	}
}

func TestValidateRejectsDuplicateFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Directive.Fields = []FieldConfig{
		{Name: "unit", Label: "Unit type"},
		{Name: "unit", Label: "Unit type again"},
	}
	if err := cfg.Validate(); !errors.Is(err, ErrFieldDuplicate) {
		t.Fatalf("expected ErrFieldDuplicate, got %v", err)
	}
}

func TestValidateRejectsFieldWithoutLabel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Directive.Fields = []FieldConfig{{Name: "unit"}}
	if err := cfg.Validate(); !errors.Is(err, ErrFieldLabelRequired) {
		t.Fatalf("expected ErrFieldLabelRequired, got %v", err)
	}
}

func TestValidateLoggingProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}

	cfg.Logging.Format = "pretty"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}
