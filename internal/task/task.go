package task

import "time"

// Task 任务记录, 字段来自外部任务工具的导出数据
// 对引擎只读, 通过访问器方法消费
type Task struct {
	description string
	project     string
	tags        string
	uuid        string
	priority    byte
	urgency     float64
	index       int
	entry       time.Time
	due         time.Time
	start       time.Time
	end         time.Time
}

// Fields 构造 Task 用的字段集合
type Fields struct {
	Description string
	Project     string
	Tags        string
	UUID        string
	Priority    byte
	Urgency     float64
	Index       int
	Entry       time.Time
	Due         time.Time
	Start       time.Time
	End         time.Time
}

// New 创建任务记录
func New(f Fields) *Task {
	return &Task{
		description: f.Description,
		project:     f.Project,
		tags:        f.Tags,
		uuid:        f.UUID,
		priority:    f.Priority,
		urgency:     f.Urgency,
		index:       f.Index,
		entry:       f.Entry,
		due:         f.Due,
		start:       f.Start,
		end:         f.End,
	}
}

// Description 任务描述
func (t *Task) Description() string { return t.description }

// Project 所属项目
func (t *Task) Project() string { return t.project }

// Tags 标签 (空格分隔)
func (t *Task) Tags() string { return t.tags }

// UUID 任务标识
func (t *Task) UUID() string { return t.uuid }

// Priority 优先级字符 (H/M/L, 0 表示未设置)
func (t *Task) Priority() byte { return t.priority }

// Urgency 紧急度
func (t *Task) Urgency() float64 { return t.urgency }

// Index 列表序号
func (t *Task) Index() int { return t.index }

// Entry 创建时间
func (t *Task) Entry() time.Time { return t.entry }

// Due 截止时间
func (t *Task) Due() time.Time { return t.due }

// Start 开始时间
func (t *Task) Start() time.Time { return t.start }

// End 完成时间
func (t *Task) End() time.Time { return t.end }
