package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nickproject/tasktint/internal/color"
	"github.com/nickproject/tasktint/internal/config"
	"github.com/nickproject/tasktint/internal/diagnose"
	"github.com/nickproject/tasktint/internal/export"
	"github.com/nickproject/tasktint/internal/logger"
	"github.com/nickproject/tasktint/internal/render"
	"github.com/nickproject/tasktint/internal/task"
	"github.com/nickproject/tasktint/internal/taskwarrior"
	"github.com/nickproject/tasktint/internal/terminal"
)

var (
	cfgFile        string
	cfg            *config.Config
	diagnoseColors bool
	taskVersion    bool
	evalRule       string
	evalProject    string
	evalDesc       string
	evalTags       string
	evalPriority   string
	evalSelected   bool
)

var rootCmd = &cobra.Command{
	Use:   "tasktint",
	Short: "taskwarrior 任务列表配色引擎",
	Long: `Tasktint 是 taskwarrior 终端前端的配色规则引擎。
按可配置的规则解析每个任务行的颜色, 支持规则预览、
断言调试、终端色彩能力诊断与规则表导出。

诊断模式:
  --diagnose-colors  检查终端色彩能力（配置、颜色对上限、去重等）`,
	RunE: runMain,
}

func init() {
	cobra.OnInitialize(initConfig)

	// 基础选项
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "配置文件路径")
	rootCmd.Flags().IntP("width", "w", 80, "渲染宽度")
	rootCmd.Flags().String("task-bin", "task", "外部 task 命令路径")
	rootCmd.Flags().String("filter", "", "传给 task 的过滤表达式")

	// 断言调试选项
	rootCmd.Flags().StringVarP(&evalRule, "eval", "e", "", "对指定断言求值")
	rootCmd.Flags().StringVar(&evalProject, "project", "", "断言调试: project 字段")
	rootCmd.Flags().StringVar(&evalDesc, "description", "", "断言调试: description 字段")
	rootCmd.Flags().StringVar(&evalTags, "tags", "", "断言调试: tags 字段")
	rootCmd.Flags().StringVar(&evalPriority, "priority", "", "断言调试: priority 字符")
	rootCmd.Flags().BoolVar(&evalSelected, "selected", false, "断言调试: 选中状态")

	// 导出选项
	rootCmd.Flags().StringP("output", "o", "", "规则表导出文件路径")
	rootCmd.Flags().String("format", "json", "导出格式 (json|csv)")

	// 日志选项
	rootCmd.Flags().String("log-file", "", "日志文件路径")
	rootCmd.Flags().String("log-level", "warn", "日志级别 (debug|info|warn|error)")

	// 诊断选项
	rootCmd.Flags().BoolVar(&diagnoseColors, "diagnose-colors", false, "运行终端色彩诊断")
	rootCmd.Flags().BoolVar(&taskVersion, "task-version", false, "探测外部 task 命令版本")

	// 绑定到 viper
	viper.BindPFlag("display.width", rootCmd.Flags().Lookup("width"))
	viper.BindPFlag("taskwarrior.bin", rootCmd.Flags().Lookup("task-bin"))
	viper.BindPFlag("taskwarrior.filter", rootCmd.Flags().Lookup("filter"))
	viper.BindPFlag("output.file", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("output.format", rootCmd.Flags().Lookup("format"))
	viper.BindPFlag("logging.file", rootCmd.Flags().Lookup("log-file"))
	viper.BindPFlag("logging.level", rootCmd.Flags().Lookup("log-level"))
}

func initConfig() {
	cfg = config.Default()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home + "/.config/tasktint")
		}
		viper.AddConfigPath("/etc/tasktint")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("TASKTINT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "读取配置文件错误: %v\n", err)
			os.Exit(1)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "解析配置错误: %v\n", err)
		os.Exit(1)
	}
}

// runMain 主入口, 根据参数决定运行模式
func runMain(cmd *cobra.Command, args []string) error {
	// 诊断模式
	if diagnoseColors {
		return runDiagnoseColors()
	}
	if taskVersion {
		return runTaskVersion()
	}

	// 初始化日志
	logCfg := logger.Config{
		Level:     cfg.Logging.Level,
		File:      cfg.Logging.File,
		MaxSizeMB: cfg.Logging.MaxSizeMB,
		MaxFiles:  cfg.Logging.MaxFiles,
	}
	if err := logger.Init(logCfg); err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	defer logger.Sync()

	eng, term, err := setupEngine()
	if err != nil {
		return err
	}
	defer eng.Teardown()

	if evalRule != "" {
		return runEval(eng)
	}
	if cfg.Output.File != "" {
		return runExport(eng, term)
	}
	return runPreview(eng, term)
}

// setupEngine 初始化配色引擎并应用配置的规则
// 单色终端降级继续运行, 只有色彩子系统不可用才报错
func setupEngine() (*color.Engine, *terminal.Adapter, error) {
	term := terminal.Detect()
	eng := color.New(term)

	if err := eng.Init(); err != nil {
		if errors.Is(err, color.ErrNoColorSupport) {
			logger.Warn("终端没有色彩能力, 以单色渲染")
			return eng, term, nil
		}
		return nil, nil, fmt.Errorf("初始化色彩子系统失败: %w", err)
	}

	applyRules(eng)
	return eng, term, nil
}

// applyRules 应用配置文件中的配色规则
// 单条规则出错只告警跳过, 颜色对耗尽时保留已有规则
func applyRules(eng *color.Engine) {
	for _, rc := range cfg.Colors {
		object := color.ParseObject(rc.Object)
		if object == color.ObjectNone {
			logger.Warn("无法识别的配色对象", "object", rc.Object)
			continue
		}

		fg, err := color.ParseColor(rc.FG)
		if err != nil {
			logger.Warn("无法识别的前景色", "object", rc.Object, "fg", rc.FG)
			continue
		}
		bg, err := color.ParseColor(rc.BG)
		if err != nil {
			logger.Warn("无法识别的背景色", "object", rc.Object, "bg", rc.BG)
			continue
		}

		var rule *string
		if rc.Rule != "" {
			rule = color.Predicate(rc.Rule)
		}

		if err := eng.AddRule(object, rule, fg, bg); err != nil {
			if errors.Is(err, color.ErrPoolExhausted) {
				logger.Error("颜色对已耗尽, 跳过规则", "object", rc.Object, "rule", rc.Rule)
				continue
			}
			logger.Warn("配色规则未生效", "object", rc.Object, "error", err)
		}
	}
}

// runDiagnoseColors 运行终端色彩诊断
func runDiagnoseColors() error {
	report := diagnose.RunColorDiagnose()
	return report.OutputJSON()
}

// runTaskVersion 探测外部 task 命令版本
func runTaskVersion() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := taskwarrior.NewClient(cfg.Taskwarrior.Bin, cfg.Taskwarrior.Filter)
	version, err := client.QueryVersion(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("task 版本: %s\n", version)
	return nil
}

// runEval 断言调试: 对合成任务求值并给出解析结果
func runEval(eng *color.Engine) error {
	var priority byte
	if evalPriority != "" {
		priority = evalPriority[0]
	}
	t := task.New(task.Fields{
		Description: evalDesc,
		Project:     evalProject,
		Tags:        evalTags,
		Priority:    priority,
	})

	matched := color.Eval(evalRule, t, evalSelected)
	if matched {
		fmt.Printf("断言 %q: 匹配\n", evalRule)
	} else {
		fmt.Printf("断言 %q: 不匹配\n", evalRule)
	}

	pair := eng.Resolve(color.ObjectTask, t, evalSelected)
	fmt.Printf("当前规则下该任务解析到颜色对 %d\n", pair)
	return nil
}

// runExport 导出解析后的规则表
func runExport(eng *color.Engine, term *terminal.Adapter) error {
	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	report := &export.Report{
		Timestamp: time.Now(),
		Profile:   term.ProfileName(),
		MaxPairs:  term.MaxPairs(),
		UsedPairs: eng.UsedPairs(),
	}
	for _, info := range eng.Rules() {
		entry := export.RuleEntry{
			Object: info.Object.Name(),
			Pair:   info.Pair,
		}
		if info.Predicate != nil {
			entry.Rule = *info.Predicate
		}
		if fg, bg, err := term.Content(info.Pair); err == nil {
			entry.FG = fg.Name()
			entry.BG = bg.Name()
		}
		report.Rules = append(report.Rules, entry)
	}

	if err := export.Export(report, cfg.Output.File, format); err != nil {
		return fmt.Errorf("导出失败: %w", err)
	}
	logger.Info("规则表已导出", "file", cfg.Output.File)
	return nil
}

// runPreview 预览配色规则与示例任务行
func runPreview(eng *color.Engine, term *terminal.Adapter) error {
	r := render.New(eng, term, cfg.Display.Width)

	fmt.Println(r.HeaderLine(" tasktint 配色预览"))
	fmt.Println()
	fmt.Print(r.RuleTable())
	fmt.Println()

	// 示例任务覆盖各默认规则的触发条件
	samples := []*task.Task{
		task.New(task.Fields{Index: 1, Description: "整理周报", Project: "home"}),
		task.New(task.Fields{Index: 2, Description: "检查这个完成了吗?", Project: "home"}),
		task.New(task.Fields{Index: 3, Description: "调研引擎结构", Project: "task-research", Priority: 'M'}),
		task.New(task.Fields{Index: 4, Description: "高优先级事项", Project: "work", Priority: 'H'}),
	}
	fmt.Print(r.TaskList(samples, 3))
	fmt.Println()
	fmt.Println(r.ErrorLine(" 错误信息示例"))

	return nil
}

// Execute 运行根命令
func Execute() error {
	return rootCmd.Execute()
}
