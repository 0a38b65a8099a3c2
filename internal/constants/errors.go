package constants

import "errors"

// CLI errors.
var (
	ErrNoAPIKeyConfigured  = errors.New("no API key configured, run 'platform configure' or set PLATFORM_API_KEY")
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json or yaml")
	ErrLookupFlagRequired  = errors.New("one of --phone or --email is required")
	ErrLookupFlagConflict  = errors.New("--phone and --email are mutually exclusive")
	ErrEmptyAPIKeyInput    = errors.New("API key input was empty")
	ErrNothingToUpdate     = errors.New("no fields to update, pass at least one flag")
)
