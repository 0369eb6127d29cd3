package stats

import "testing"

func TestCountersRecord(t *testing.T) {
	c := NewCounters(4)
	c.Record(1)
	c.Record(1)
	c.Record(2)

	if got := c.Distinct(); got != 2 {
		t.Errorf("Distinct() = %d, want 2", got)
	}
	if got := c.Total(); got != 3 {
		t.Errorf("Total() = %d, want 3", got)
	}
}

func TestCountersZeroValue(t *testing.T) {
	var c Counters
	c.Record(5)

	if got := c.Distinct(); got != 1 {
		t.Errorf("Distinct() = %d, want 1", got)
	}
	if got := c.Total(); got != 1 {
		t.Errorf("Total() = %d, want 1", got)
	}
}
