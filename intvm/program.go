package intvm

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseProgram parses comma-separated signed decimal integers.
// Surrounding whitespace, including a trailing newline, is ignored.
func ParseProgram(text string) ([]int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty program")
	}
	fields := strings.Split(text, ",")
	program := make([]int64, 0, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("program field %d: %w", i, err)
		}
		program = append(program, v)
	}
	return program, nil
}

func ReadProgram(r io.Reader) ([]int64, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseProgram(string(content))
}

func FormatProgram(program []int64) string {
	buf := new(strings.Builder)
	for i, v := range program {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.FormatInt(v, 10))
	}
	return buf.String()
}
