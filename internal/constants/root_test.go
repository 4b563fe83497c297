package constants

import "testing"

// The TUI renders its tab bar by comparing the current state against the tab
// index, so the four tab states must count up from zero in display order.
func TestSessionStateValues(t *testing.T) {
	tabs := []SessionState{StateDashboard, StateHabits, StateMood, StateCalendar}
	for i, state := range tabs {
		if state != SessionState(i) {
			t.Errorf("tab state #%d has value %d, want %d", i, state, i)
		}
	}

	if StateConfirmClear != SessionState(len(tabs)) {
		t.Errorf("StateConfirmClear = %d, want %d", StateConfirmClear, len(tabs))
	}
}
