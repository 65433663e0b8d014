package config

import "github.com/ayoisaiah/breathe/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s must be a valid hex color code (e.g. #FF0000), got %q",
	}

	errEmptyPalette = &apperr.Error{
		Message: "the color palette must contain at least one color",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s must be between %v and %v, got %v",
	}

	errInvalidRange = &apperr.Error{
		Message: "%s must be between %d and %d, got %d",
	}
)
