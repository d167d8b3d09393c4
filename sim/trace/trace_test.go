package trace

import (
	"testing"
)

func TestSimulationTrace_RecordDispatch_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for dispatch decisions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDispatch})

	// WHEN a dispatch record is recorded
	st.RecordDispatch(DispatchRecord{
		Clock:     4,
		ProcessID: "P3",
		Previous:  "P2",
		Reason:    "shortest-remaining (1)",
		Preempted: true,
	})

	// THEN the trace contains one dispatch record with correct data
	if len(st.Dispatches) != 1 {
		t.Fatalf("expected 1 dispatch, got %d", len(st.Dispatches))
	}
	if st.Dispatches[0].ProcessID != "P3" {
		t.Errorf("expected process ID P3, got %s", st.Dispatches[0].ProcessID)
	}
	if !st.Dispatches[0].Preempted {
		t.Error("expected preempted=true")
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDispatch})

	// WHEN multiple records are added
	st.RecordDispatch(DispatchRecord{Clock: 0, ProcessID: "P1"})
	st.RecordDispatch(DispatchRecord{Clock: 2, ProcessID: "P2", Previous: "P1", Preempted: true})
	st.RecordDispatch(DispatchRecord{Clock: 4, ProcessID: "P3", Previous: "P2", Preempted: true})

	// THEN order is preserved
	if len(st.Dispatches) != 3 {
		t.Fatalf("expected 3 dispatches, got %d", len(st.Dispatches))
	}
	for i, want := range []string{"P1", "P2", "P3"} {
		if st.Dispatches[i].ProcessID != want {
			t.Errorf("dispatch %d: got %s, want %s", i, st.Dispatches[i].ProcessID, want)
		}
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"dispatch", true},
		{"", true},
		{"decisions", false},
		{"all", false},
		{"DISPATCH", false},
	}
	for _, tc := range tests {
		if got := IsValidTraceLevel(tc.level); got != tc.valid {
			t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tc.level, got, tc.valid)
		}
	}
}

func TestTraceLevel_Enabled(t *testing.T) {
	if TraceLevelNone.Enabled() {
		t.Error("none must not be enabled")
	}
	if TraceLevel("").Enabled() {
		t.Error("empty level must not be enabled")
	}
	if !TraceLevelDispatch.Enabled() {
		t.Error("dispatch must be enabled")
	}
}
