package domain

import "strings"

// Task 選單任務
type Task string

const (
	TaskBalance Task = "balance"
	TaskDeposit Task = "deposit"
	TaskExit    Task = "exit"
)

// ValidTasks 依提示順序列出所有合法任務
var ValidTasks = []Task{TaskBalance, TaskDeposit, TaskExit}

// ParseTask 解析使用者輸入的任務 (不分大小寫)
//
// 參數:
//
//	raw: 使用者原始輸入 (不含換行)
//
// 回傳:
//
//	Task: 正規化後的任務
//	error: 未知任務時回傳 KindInvalidTask
func ParseTask(raw string) (Task, error) {
	normalized := Task(strings.ToLower(strings.TrimSpace(raw)))
	for _, task := range ValidTasks {
		if task == normalized {
			return task, nil
		}
	}
	return "", NewUnknownTaskError(raw)
}
