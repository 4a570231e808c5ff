package dao

// ToggleResult 开关型写操作（点赞/关注）的原子结果
type ToggleResult int

const (
	ToggleCreated ToggleResult = iota
	ToggleAlreadyExists
	ToggleDeleted
	ToggleNotFound
)
