package taskwarrior

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/nickproject/tasktint/internal/logger"
)

// DefaultBin 默认的外部命令名
const DefaultBin = "task"

// Client 封装对外部 task 命令的调用
// 只负责进程调用与版本探测, 导出记录的解码由上层前端负责
type Client struct {
	bin    string
	filter string
}

// NewClient 创建客户端, bin 为空时使用 DefaultBin
func NewClient(bin, filter string) *Client {
	if bin == "" {
		bin = DefaultBin
	}
	return &Client{bin: bin, filter: filter}
}

// Version task 命令的版本号
type Version struct {
	Major int
	Minor int
	Patch int
}

// String 版本号文本
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// QueryVersion 探测外部 task 命令的版本
func (c *Client) QueryVersion(ctx context.Context) (Version, error) {
	out, err := exec.CommandContext(ctx, c.bin, "--version").Output()
	if err != nil {
		return Version{}, fmt.Errorf("执行 %s --version 失败: %w", c.bin, err)
	}

	raw := strings.TrimSpace(string(out))
	var v Version
	if _, err := fmt.Sscanf(raw, "%d.%d.%d", &v.Major, &v.Minor, &v.Patch); err != nil {
		return Version{}, fmt.Errorf("无法解析 task 版本号: %q", raw)
	}

	logger.Debug("探测到 task 版本", "version", v.String())
	return v, nil
}

// Export 运行 task export, 返回原始导出内容
func (c *Client) Export(ctx context.Context) ([]byte, error) {
	args := []string{"export"}
	if c.filter != "" {
		args = append(args, strings.Fields(c.filter)...)
	}

	out, err := exec.CommandContext(ctx, c.bin, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("执行 %s export 失败: %w", c.bin, err)
	}
	return out, nil
}
