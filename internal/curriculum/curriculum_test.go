package curriculum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultTasksDayCounts(t *testing.T) {
	templates := DefaultTasks()

	expected := map[int]int{
		1: 7,
		2: 10,
		3: 23,
		4: 24,
		5: 25,
	}

	for day, count := range expected {
		require.Lenf(t, templates[day], count, "day %d", day)
	}

	total := 0
	for _, tasks := range templates {
		total += len(tasks)
	}
	require.Equal(t, 89, total)

	require.Equal(t, templates, DefaultTasks())
}

func TestDefaultTasksLaterDaysHaveNoContentYet(t *testing.T) {
	templates := DefaultTasks()

	for day := 6; day <= TotalDays; day++ {
		require.Emptyf(t, templates[day], "day %d", day)
	}
}

func TestDefaultTasksTypesUniquePerDay(t *testing.T) {
	for day, tasks := range DefaultTasks() {
		seen := make(map[string]bool, len(tasks))
		for _, task := range tasks {
			require.Falsef(t, seen[task.Type], "day %d repeats type %q", day, task.Type)
			seen[task.Type] = true
		}
	}
}

func TestDefaultTasksFieldsPopulated(t *testing.T) {
	for day, tasks := range DefaultTasks() {
		for _, task := range tasks {
			require.NotEmptyf(t, task.Type, "day %d", day)
			require.NotEmptyf(t, task.Description, "day %d type %s", day, task.Type)
			require.NotEmptyf(t, task.Metadata["category"], "day %d type %s", day, task.Type)
		}
	}
}
