package logging

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// ChiLogWriter forwards the output of chi's DefaultLogFormatter to logrus
type ChiLogWriter struct {
}

func (lw *ChiLogWriter) Print(a ...interface{}) {
	msg := strings.TrimSpace(fmt.Sprint(a...))
	if len(msg) > 1 && msg[0] == '[' && msg[len(msg)-1] == ']' {
		msg = msg[1 : len(msg)-1]
	}
	logrus.Info(msg)
}
