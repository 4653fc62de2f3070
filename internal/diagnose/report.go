package diagnose

import (
	"encoding/json"
	"os"
	"time"
)

// CheckStatus 检查状态
type CheckStatus string

const (
	StatusPass    CheckStatus = "pass"
	StatusFail    CheckStatus = "fail"
	StatusWarning CheckStatus = "warning"
	StatusSkipped CheckStatus = "skipped"
)

// CheckResult 单项检查结果
type CheckResult struct {
	Name    string      `json:"name"`
	Status  CheckStatus `json:"status"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Report 诊断报告 (JSON 格式)
type Report struct {
	Timestamp time.Time     `json:"timestamp"`
	Type      string        `json:"type"`
	Status    CheckStatus   `json:"status"`
	Summary   string        `json:"summary"`
	Checks    []CheckResult `json:"checks"`
	Terminal  *TerminalInfo `json:"terminal,omitempty"`
}

// TerminalInfo 终端环境信息
type TerminalInfo struct {
	Term      string `json:"term"`
	ColorTerm string `json:"colorterm,omitempty"`
	Profile   string `json:"profile"`
	MaxPairs  int    `json:"max_pairs"`
	HasColors bool   `json:"has_colors"`
}

// NewReport 创建诊断报告
func NewReport(reportType string) *Report {
	return &Report{
		Timestamp: time.Now(),
		Type:      reportType,
		Status:    StatusPass,
		Checks:    make([]CheckResult, 0),
	}
}

// AddCheck 添加检查结果
func (r *Report) AddCheck(name string, status CheckStatus, message string) {
	r.Checks = append(r.Checks, CheckResult{
		Name:    name,
		Status:  status,
		Message: message,
	})
	r.updateOverallStatus(status)
}

// AddCheckWithError 添加带错误的检查结果
func (r *Report) AddCheckWithError(name string, status CheckStatus, message string, err error) {
	check := CheckResult{
		Name:    name,
		Status:  status,
		Message: message,
	}
	if err != nil {
		check.Error = err.Error()
	}
	r.Checks = append(r.Checks, check)
	r.updateOverallStatus(status)
}

func (r *Report) updateOverallStatus(status CheckStatus) {
	if status == StatusFail {
		r.Status = StatusFail
	} else if status == StatusWarning && r.Status != StatusFail {
		r.Status = StatusWarning
	}
}

// SetSummary 设置摘要
func (r *Report) SetSummary(summary string) {
	r.Summary = summary
}

// OutputJSON 输出 JSON 格式
func (r *Report) OutputJSON() error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}
