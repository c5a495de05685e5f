package logger

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Passes
	FieldPassID     = "pass_id"
	FieldDurationMS = "duration_ms"
	FieldComponent  = "component"

	// Types
	FieldType       = "type"
	FieldReason     = "reason"
	FieldProperties = "properties"

	// Counts
	FieldCandidates = "candidates"
	FieldUnits      = "units"
	FieldSkipped    = "skipped"
	FieldCacheHits  = "cache_hits"
	FieldCacheMiss  = "cache_misses"

	// Files and paths
	FieldFile     = "file"
	FieldArtifact = "artifact"
	FieldBytes    = "bytes"

	// Errors
	FieldError = "error"
)
