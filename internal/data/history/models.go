package history

import "time"

const SchemaVersion = 1

// Snapshot summarizes one analysis run of a package.
type Snapshot struct {
	ProjectKey            string    `json:"project_key"`
	RunID                 string    `json:"run_id"`
	SchemaVersion         int       `json:"schema_version"`
	Timestamp             time.Time `json:"timestamp"`
	ModuleCount           int       `json:"module_count"`
	ImportCount           int       `json:"import_count"`
	UnusedImplicitCount   int       `json:"unused_implicit_count"`
	UnusedQualifiedCount  int       `json:"unused_qualified_count"`
	UnknownSkippedCount   int       `json:"unknown_skipped_count"`
	EnvironmentModules    int       `json:"environment_modules"`
	DurationMilliseconds  int64     `json:"duration_ms"`
}

type TrendPoint struct {
	Timestamp            time.Time `json:"timestamp"`
	RunID                string    `json:"run_id"`
	ModuleCount          int       `json:"module_count"`
	ImportCount          int       `json:"import_count"`
	UnusedImplicitCount  int       `json:"unused_implicit_count"`
	UnusedQualifiedCount int       `json:"unused_qualified_count"`
	UnknownSkippedCount  int       `json:"unknown_skipped_count"`
	DeltaModules         int       `json:"delta_modules"`
	DeltaImports         int       `json:"delta_imports"`
	DeltaUnusedImplicit  int       `json:"delta_unused_implicit"`
	DeltaUnusedQualified int       `json:"delta_unused_qualified"`
	AvgUnused            float64   `json:"avg_unused"`
	WindowHours          float64   `json:"window_hours"`
}

type TrendReport struct {
	SchemaVersion int          `json:"schema_version"`
	Since         time.Time    `json:"since"`
	Until         time.Time    `json:"until"`
	Window        string       `json:"window"`
	RunCount      int          `json:"run_count"`
	Points        []TrendPoint `json:"points"`
}
