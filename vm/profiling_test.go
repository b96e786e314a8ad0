package vm_test

import (
	"testing"

	"github.com/lookbusy1344/rv64i-emulator/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsRecordsInstructionsAndBranches(t *testing.T) {
	interp := newInterpreter(t, "addi x1, x0, 3\nbeq x1, x0, 8\naddi x2, x0, 9")
	stats := vm.NewPerformanceStatistics()
	interp.EnableStatistics(stats)

	interp.Run()

	assert.Equal(t, uint64(2), stats.InstructionCounts["addi"])
	assert.Equal(t, uint64(1), stats.BranchCount)
	assert.Equal(t, uint64(1), stats.BranchMissedCount)
	assert.Equal(t, uint64(0), stats.BranchTakenCount)
}

func TestStatisticsDisabledByDefault(t *testing.T) {
	interp := newInterpreter(t, "addi x1, x0, 1")
	interp.Run()
	assert.Nil(t, interp.Statistics())
}

func TestCoverageRecordsExecutedLines(t *testing.T) {
	interp := newInterpreter(t, "addi x1, x0, 1\naddi x2, x0, 2\naddi x3, x0, 3")
	cov := vm.NewCodeCoverage(nil)
	interp.EnableCoverage(cov)

	interp.Run()

	entry := cov.GetEntry(1)
	require.NotNil(t, entry)
	assert.Equal(t, uint64(1), entry.ExecutionCount)
	assert.Equal(t, 3, len(cov.GetExecutedLines()))
	assert.Equal(t, 0, len(cov.GetUnexecutedLines()))
}

func TestCoverageResetsOnReset(t *testing.T) {
	interp := newInterpreter(t, "addi x1, x0, 1")
	cov := vm.NewCodeCoverage(nil)
	interp.EnableCoverage(cov)

	interp.Run()
	require.Equal(t, 1, len(cov.GetExecutedLines()))

	interp.Reset()
	assert.Equal(t, 0, len(cov.GetExecutedLines()))
}
