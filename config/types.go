package config

// Config represents the grove.yml / grove.toml project configuration (spec
// §6 External Interfaces, SPEC_FULL §10.3). Unknown top-level keys are
// captured into Extensions rather than rejected, so a project config can
// carry fields this package doesn't know about yet.
type Config struct {
	Version   string          `yaml:"version" toml:"version"`
	Agents    AgentsConfig    `yaml:"agents,omitempty" toml:"agents,omitempty"`
	Scheduler SchedulerConfig `yaml:"scheduler,omitempty" toml:"scheduler,omitempty"`
	Tmux      TmuxConfig      `yaml:"tmux,omitempty" toml:"tmux,omitempty"`

	// Extensions holds any top-level key not recognised above, so
	// unrelated tooling can share a grove.yml without this package
	// stripping its configuration.
	Extensions map[string]interface{} `yaml:",inline" toml:"-"`
}

// AgentsConfig configures the launch command for each supported agent kind.
// Both fields are overridable at runtime via GROVE_CLAUDE_CMD / GROVE_CODEX_CMD
// (spec §6); an empty or whitespace-only override is rejected by
// Config.AgentCommand, which then uses the configured command.
type AgentsConfig struct {
	Claude AgentLaunchConfig `yaml:"claude,omitempty" toml:"claude,omitempty"`
	Codex  AgentLaunchConfig `yaml:"codex,omitempty" toml:"codex,omitempty"`
}

// AgentLaunchConfig names the executable (and any fixed arguments) used to
// start an agent inside a freshly created tmux session.
type AgentLaunchConfig struct {
	Command string   `yaml:"command,omitempty" toml:"command,omitempty"`
	Args    []string `yaml:"args,omitempty" toml:"args,omitempty"`
}

// SchedulerConfig overrides entries in the Scheduler's interval matrix
// (spec §4.4). Zero durations leave the built-in default for that context
// in place; see pkg/scheduler.Intervals.
type SchedulerConfig struct {
	InteractiveFastMS       int `yaml:"interactive_fast_ms,omitempty" toml:"interactive_fast_ms,omitempty"`
	InteractiveMediumMS     int `yaml:"interactive_medium_ms,omitempty" toml:"interactive_medium_ms,omitempty"`
	InteractiveSlowMS       int `yaml:"interactive_slow_ms,omitempty" toml:"interactive_slow_ms,omitempty"`
	SelectedActiveMS        int `yaml:"selected_active_ms,omitempty" toml:"selected_active_ms,omitempty"`
	SelectedWaitingMS       int `yaml:"selected_waiting_ms,omitempty" toml:"selected_waiting_ms,omitempty"`
	BackgroundLiveMS        int `yaml:"background_live_ms,omitempty" toml:"background_live_ms,omitempty"`
	TerminalMS              int `yaml:"terminal_ms,omitempty" toml:"terminal_ms,omitempty"`
	DebounceMS              int `yaml:"debounce_ms,omitempty" toml:"debounce_ms,omitempty"`
}

// TmuxConfig names a dedicated multiplexer socket, mirroring the
// GROVE_TMUX_SOCKET test-isolation mechanism in pkg/tmux.Client.
type TmuxConfig struct {
	Socket string `yaml:"socket,omitempty" toml:"socket,omitempty"`
}

// SetDefaults fills in the zero-value fields with Grove's built-in defaults.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Agents.Claude.Command == "" {
		c.Agents.Claude.Command = "claude"
	}
	if c.Agents.Codex.Command == "" {
		c.Agents.Codex.Command = "codex"
	}
}
