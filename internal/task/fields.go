package task

// Field 任务字段标识
type Field int

const (
	FieldIndex Field = iota
	FieldUUID
	FieldTags
	FieldStart
	FieldEnd
	FieldEntry
	FieldDue
	FieldProject
	FieldPriority
	FieldDescription
	FieldUrgency
	FieldUnknown
)

// ParseFieldName 从导出数据的字段名解析字段标识
func ParseFieldName(name string) Field {
	switch name {
	case "id":
		return FieldIndex
	case "uuid":
		return FieldUUID
	case "tags":
		return FieldTags
	case "start":
		return FieldStart
	case "end":
		return FieldEnd
	case "entry":
		return FieldEntry
	case "due":
		return FieldDue
	case "project":
		return FieldProject
	case "priority":
		return FieldPriority
	case "description":
		return FieldDescription
	case "urgency":
		return FieldUrgency
	default:
		return FieldUnknown
	}
}
