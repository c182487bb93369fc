package logging

import (
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

// callerDepth is the number of stack frames between Fire and the code that logged the entry
const callerDepth = 9

// ContextHook adds the source of the log call (file, line, func) to every entry
type ContextHook struct{}

func (hook ContextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (hook ContextHook) Fire(entry *logrus.Entry) error {
	if pc, file, line, ok := runtime.Caller(callerDepth); ok {
		funcName := runtime.FuncForPC(pc).Name()

		entry.Data["file"] = path.Base(file)
		entry.Data["line"] = line
		entry.Data["func"] = path.Base(funcName)
	}

	return nil
}
