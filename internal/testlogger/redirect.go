package testlogger

import (
	"bufio"
	"bytes"
	"runtime/debug"
	"strings"
)

// getCallerInstance walks up the stack to find the testing.tRunner frame that
// uniquely identifies the current test goroutine. Goroutines spawned outside
// of the test runner have no such frame and are reported as "".
func getCallerInstance() string {
	stack := debug.Stack()
	sc := bufio.NewScanner(bytes.NewReader(stack))
	for sc.Scan() {
		if strings.HasPrefix(sc.Text(), "testing.tRunner(") {
			return sc.Text()
		}
		if strings.HasPrefix(sc.Text(), "created by ") && strings.Contains(sc.Text(), " in goroutine ") {
			return ""
		}
	}

	return ""
}
