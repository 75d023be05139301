package stack

import (
	"runtime"
	"strconv"
	"strings"
)

type call struct {
	function uintptr
	file     string
	line     int
}

// Call captures the caller at the given depth above this call.
func Call(depth int) (c call) {
	c.function, c.file, c.line, _ = runtime.Caller(depth + 1)

	return c
}

// Record formats the captured caller as "pkg/path.Func(file.go:42)".
func (c call) Record() string {
	name := runtime.FuncForPC(c.function).Name()
	name = strings.ReplaceAll(name, "[...]", "")

	file := c.file
	if i := strings.LastIndexByte(file, '/'); i > -1 {
		file = file[i+1:]
	}

	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	sb.WriteString(file)
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(c.line))
	sb.WriteByte(')')

	return sb.String()
}

// Record is a shortcut for Call(depth+1).Record().
func Record(depth int) string {
	return Call(depth + 1).Record()
}
