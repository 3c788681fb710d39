package traces

import (
	"fmt"
	"strings"
)

// String renders the entry as "at fn (script:line:column)".
func (e Entry) String() string {
	name := e.FunctionName
	if name == "" {
		name = "<anonymous>"
	}
	script := e.ScriptName
	if script == "" {
		script = "<unknown>"
	}
	return fmt.Sprintf("at %s (%s:%d:%d)", name, script, e.Line, e.Column)
}

func (s *StackTrace) String() string {
	var sb strings.Builder
	for i, entry := range s.entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(entry.String())
	}
	return sb.String()
}
