package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Format 导出格式
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// RuleEntry 导出的单条规则
type RuleEntry struct {
	Object string `json:"object"`
	Rule   string `json:"rule,omitempty"`
	Pair   int    `json:"pair"`
	FG     string `json:"fg"`
	BG     string `json:"bg"`
}

// Report 导出报告: 终端能力与解析后的规则表
type Report struct {
	Timestamp time.Time   `json:"timestamp"`
	Profile   string      `json:"profile"`
	MaxPairs  int         `json:"max_pairs"`
	UsedPairs int         `json:"used_pairs"`
	Rules     []RuleEntry `json:"rules"`
}

// Export 导出报告到文件
func Export(report *Report, filename string, format Format) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("创建文件失败: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatJSON:
		return exportJSON(report, file)
	case FormatCSV:
		return exportCSV(report, file)
	default:
		return fmt.Errorf("不支持的格式: %s", format)
	}
}

func exportJSON(report *Report, file *os.File) error {
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func exportCSV(report *Report, file *os.File) error {
	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"object", "rule", "pair", "fg", "bg"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, entry := range report.Rules {
		row := []string{
			entry.Object,
			entry.Rule,
			fmt.Sprintf("%d", entry.Pair),
			entry.FG,
			entry.BG,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// ParseFormat 解析格式字符串
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("不支持的格式: %s (支持: json, csv)", s)
	}
}
