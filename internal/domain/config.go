package domain

// Config is the YAML configuration loaded from ~/.macfix/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Network             NetworkSettings   `yaml:"network"`
	Thresholds          ThresholdSettings `yaml:"thresholds"`
	Execution           ExecutionSettings `yaml:"execution"`
	Logging             LoggingSettings   `yaml:"logging"`
	History             HistorySettings   `yaml:"history"`
}

// NetworkSettings hold the targets used by the network probes.
type NetworkSettings struct {
	PingTarget       string `yaml:"ping_target"`
	PingCount        int    `yaml:"ping_count"`
	DNSProbeHost     string `yaml:"dns_probe_host"`
	TracerouteTarget string `yaml:"traceroute_target"`
}

// ThresholdSettings hold the fixed pass/fail thresholds of the scan.
type ThresholdSettings struct {
	DiskUsedPercentMax int   `yaml:"disk_used_percent_max"`
	MinFreeMemoryPages int64 `yaml:"min_free_memory_pages"`
}

// ExecutionSettings control how remedial actions run.
type ExecutionSettings struct {
	ConfirmDestructive bool `yaml:"confirm_destructive"`
}

// LoggingSettings control terminal verbosity and the optional transcript.
// TranscriptPath names a log file the dispatcher appends lines to; the
// file's lifecycle is owned by whoever configured it.
type LoggingSettings struct {
	Verbose        bool   `yaml:"verbose"`
	TranscriptPath string `yaml:"transcript_path"`
}

// HistorySettings control the local action history store.
type HistorySettings struct {
	Enabled bool `yaml:"enabled"`
}
