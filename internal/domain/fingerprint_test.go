package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTasks() []Task {
	return []Task{
		NewTask("10:00–10:20", "Quick living room pick up + vacuum phase 1"),
		NewTask("10:20–10:40", "Dishes"),
		NewTask("10:40–11:00", "Laundry → switch/dry + fold one load"),
		NewTask("11:00–11:20", "Half bath clean"),
	}
}

func TestFingerprint_Shape(t *testing.T) {
	fp := Fingerprint(sampleTasks())
	assert.Len(t, fp, 64)
	assert.Regexp(t, "^[0-9a-f]+$", fp)
	assert.Equal(t, fp, Fingerprint(sampleTasks()), "deterministic")
}

func TestFingerprint_OrderIndependent(t *testing.T) {
	tasks := sampleTasks()
	reversed := []Task{tasks[3], tasks[2], tasks[1], tasks[0]}
	assert.Equal(t, Fingerprint(tasks), Fingerprint(reversed))
}

func TestFingerprint_IgnoresTimeRanges(t *testing.T) {
	tasks := sampleTasks()
	retimed := sampleTasks()
	retimed[1].Time = "9:00–9:30"
	assert.Equal(t, Fingerprint(tasks), Fingerprint(retimed))
}

func TestFingerprint_IgnoresCaseAndSpacing(t *testing.T) {
	tasks := sampleTasks()
	edited := sampleTasks()
	edited[3].Label = "  HALF   bath clean "
	assert.Equal(t, Fingerprint(tasks), Fingerprint(edited))
}

func TestFingerprint_SensitiveToLabelContent(t *testing.T) {
	tasks := sampleTasks()
	edited := sampleTasks()
	edited[1].Label = "Dishes + counters"
	assert.NotEqual(t, Fingerprint(tasks), Fingerprint(edited))

	dropped := sampleTasks()[:3]
	assert.NotEqual(t, Fingerprint(tasks), Fingerprint(dropped))
}

func TestFingerprint_CountsDuplicates(t *testing.T) {
	once := []Task{NewTask("", "Dishes")}
	twice := []Task{NewTask("", "Dishes"), NewTask("", "dishes")}
	assert.NotEqual(t, Fingerprint(once), Fingerprint(twice))
}

func TestFingerprint_Empty(t *testing.T) {
	assert.Equal(t, Fingerprint(nil), Fingerprint([]Task{}))
	assert.Len(t, Fingerprint(nil), 64)
}
