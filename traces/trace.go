package traces

// Entry is one materialized frame of a captured trace.
type Entry struct {
	FunctionName string
	ScriptName   string
	ScriptID     int64
	Line         int
	Column       int
}

// StackTrace is the result of a capture. It owns its entries; the VM
// state it was captured from may change freely afterwards.
type StackTrace struct {
	entries []Entry
}

func (s *StackTrace) Len() int {
	return len(s.entries)
}

func (s *StackTrace) Entry(i int) Entry {
	return s.entries[i]
}

func materialize(summary FrameSummary) Entry {
	entry := Entry{
		FunctionName: summary.FunctionName,
		Line:         summary.Line,
		Column:       summary.Column,
	}
	if summary.Script != nil {
		entry.ScriptName = summary.Script.Name
		entry.ScriptID = summary.Script.ID
	}
	return entry
}
