package config

// Config 应用配置
type Config struct {
	Taskwarrior TaskwarriorConfig `mapstructure:"taskwarrior"`
	Display     DisplayConfig     `mapstructure:"display"`
	Logging     LogConfig         `mapstructure:"logging"`
	Output      OutputConfig      `mapstructure:"output"`
	Colors      []RuleConfig      `mapstructure:"colors"`
}

// TaskwarriorConfig 外部 task 命令配置
type TaskwarriorConfig struct {
	Bin    string `mapstructure:"bin"`
	Filter string `mapstructure:"filter"`
}

// DisplayConfig 显示配置
type DisplayConfig struct {
	Width int `mapstructure:"width"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level     string `mapstructure:"level"`
	File      string `mapstructure:"file"`
	MaxSizeMB int    `mapstructure:"max_size_mb"`
	MaxFiles  int    `mapstructure:"max_files"`
}

// OutputConfig 导出配置
type OutputConfig struct {
	File   string `mapstructure:"file"`
	Format string `mapstructure:"format"`
}

// RuleConfig 单条配色规则
// Rule 为空表示无条件规则; FG/BG 接受颜色名、色号或 colorNNN
type RuleConfig struct {
	Object string `mapstructure:"object"`
	Rule   string `mapstructure:"rule"`
	FG     string `mapstructure:"fg"`
	BG     string `mapstructure:"bg"`
}

// Default 返回默认配置
// 默认配色规则与引擎内置规则一致, 便于用户以此为起点覆盖
func Default() *Config {
	return &Config{
		Taskwarrior: TaskwarriorConfig{
			Bin:    "task",
			Filter: "",
		},
		Display: DisplayConfig{
			Width: 80,
		},
		Logging: LogConfig{
			Level:     "warn",
			File:      "",
			MaxSizeMB: 10,
			MaxFiles:  3,
		},
		Output: OutputConfig{
			File:   "",
			Format: "json",
		},
		Colors: []RuleConfig{
			{Object: "header", FG: "blue", BG: "black"},
			{Object: "task", FG: "-1", BG: "-1"},
			{Object: "task", Rule: "~r '[Mm]'", FG: "yellow", BG: "-1"},
			{Object: "task", Rule: "~d '\\?'", FG: "green", BG: "-1"},
			{Object: "task", Rule: "~p 'task*'", FG: "red", BG: "-1"},
			{Object: "task", Rule: "~S", FG: "cyan", BG: "black"},
			{Object: "error", FG: "red", BG: "-1"},
		},
	}
}
