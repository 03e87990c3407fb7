package config

type Config struct {
	Version  int      `toml:"version"`
	Project  Project  `toml:"project"`
	Analysis Analysis `toml:"analysis"`
	Exclude  Exclude  `toml:"exclude"`
	History  History  `toml:"history"`
	Tracing  Tracing  `toml:"tracing"`
}

type Project struct {
	Key string `toml:"key"`
}

type Analysis struct {
	Workers int `toml:"workers"`
	// ModuleRate throttles how many modules per second enter the worker
	// pool; zero disables throttling.
	ModuleRate float64 `toml:"module_rate"`
	Burst      int     `toml:"burst"`
}

type Exclude struct {
	// Modules lists glob patterns; matching modules are handed back with
	// their import lists untouched.
	Modules []string `toml:"modules"`
}

type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

type Tracing struct {
	Enabled  bool   `toml:"enabled"`
	Endpoint string `toml:"endpoint"`
}
