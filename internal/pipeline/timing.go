package pipeline

import (
	"fmt"
	"time"
)

// stageTimer measures named pipeline stages in execution order.
type stageTimer struct {
	timings []StageTiming
	current string
	start   time.Time
}

func newStageTimer() *stageTimer {
	return &stageTimer{}
}

// begin starts timing a stage, closing the previous one if still open.
func (t *stageTimer) begin(stage string) {
	t.end()
	t.current = stage
	t.start = time.Now()
}

// end closes the currently open stage, if any.
func (t *stageTimer) end() {
	if t.current == "" {
		return
	}
	t.timings = append(t.timings, StageTiming{Stage: t.current, Duration: time.Since(t.start)})
	t.current = ""
}

// String renders all recorded stages for log output.
func (t *stageTimer) String() string {
	out := ""
	for i, st := range t.timings {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s: %v", st.Stage, st.Duration)
	}
	return out
}
