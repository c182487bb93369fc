package logging

import (
	"fmt"
	"github.com/sirupsen/logrus"
)

// ChiLogWriter sends the output of chi's DefaultLogFormatter to logrus at debug level
type ChiLogWriter struct {
}

func (lw *ChiLogWriter) Print(a ...interface{}) {
	if len(a) == 0 {
		return
	}
	if len(a) == 1 {
		logrus.Debug(fmt.Sprint(a[0]))
	} else {
		logrus.Debugf(fmt.Sprint(a[0]), a[1:]...)
	}
}
