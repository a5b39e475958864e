package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/di-graph/go-dmp/diffmatchpatch"
	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the Config structure.
func ValidateConfig(cfg *Config) error {
	validate := validator.New()

	// Register custom validation for LogLevel
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
			return true
		default:
			return false
		}
	})

	// Register custom validation for LogFormat
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "console", "text", "json":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("lengthunit", func(fl validator.FieldLevel) bool {
		_, err := diffmatchpatch.ParseLengthUnit(fl.Field().String())
		return err == nil
	})

	err := validate.Struct(cfg)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("configuration validation error: %w", err)
		}
		var errorMessages []string
		for _, e := range validationErrors {
			msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", e.Namespace(), e.Tag())
			if e.Param() != "" {
				msg += fmt.Sprintf(" (expected: %s)", e.Param())
			}
			errorMessages = append(errorMessages, msg)
		}
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errorMessages, "\n  "))
	}

	if 2*cfg.Patch.Margin >= cfg.Match.MaxBits {
		return fmt.Errorf("configuration validation failed:\n  patch.margin %d leaves no room in match.max_bits %d", cfg.Patch.Margin, cfg.Match.MaxBits)
	}
	return nil
}
