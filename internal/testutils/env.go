package testutils

import "os"

// SavedEnv 记录环境变量被覆盖前的状态
type SavedEnv struct {
	Key   string
	Had   bool
	Value string
}

// SetEnv 设置环境变量并返回旧值，配合 RestoreEnv 在测试结束时还原。
func SetEnv(key, value string) SavedEnv {
	prev, had := os.LookupEnv(key)
	_ = os.Setenv(key, value)
	return SavedEnv{Key: key, Had: had, Value: prev}
}

func RestoreEnv(envs []SavedEnv) {
	for _, env := range envs {
		if !env.Had {
			_ = os.Unsetenv(env.Key)
			continue
		}
		_ = os.Setenv(env.Key, env.Value)
	}
}
