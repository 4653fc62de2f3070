package task

import "sort"

// SortMode 排序模式
type SortMode int

const (
	SortByIndex SortMode = iota
	SortByProject
	SortByPriority
	SortByUrgency
	SortByDue
)

// Sort 排序任务列表
func Sort(tasks []*Task, mode SortMode) {
	sort.SliceStable(tasks, func(i, j int) bool {
		switch mode {
		case SortByProject:
			if tasks[i].project != tasks[j].project {
				return tasks[i].project < tasks[j].project
			}
			return tasks[i].index < tasks[j].index
		case SortByPriority:
			return priorityRank(tasks[i].priority) > priorityRank(tasks[j].priority)
		case SortByUrgency:
			return tasks[i].urgency > tasks[j].urgency
		case SortByDue:
			// 无截止时间的排在最后
			if tasks[i].due.IsZero() != tasks[j].due.IsZero() {
				return !tasks[i].due.IsZero()
			}
			return tasks[i].due.Before(tasks[j].due)
		default:
			return tasks[i].index < tasks[j].index
		}
	})
}

// priorityRank 优先级权重, 未设置最低
func priorityRank(p byte) int {
	switch p {
	case 'H':
		return 3
	case 'M':
		return 2
	case 'L':
		return 1
	default:
		return 0
	}
}
