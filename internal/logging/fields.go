package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService     = "service"
	FieldVersion     = "version"
	FieldGeneration  = "generation"
	FieldRunID       = "run_id"
	FieldSeason      = "season"
	FieldCompetition = "competition"
	FieldPlayers     = "players"
	FieldRows        = "rows"
	FieldCount       = "count"
	FieldDurationMS  = "duration_ms"
)
