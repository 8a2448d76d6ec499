package jobs_test

import (
	"errors"
	"testing"

	"pointofsale/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJob struct {
	name     string
	startErr error
	log      *[]string
}

func (j *fakeJob) Start() error {
	if j.startErr != nil {
		return j.startErr
	}
	*j.log = append(*j.log, "start "+j.name)
	return nil
}

func (j *fakeJob) Stop() {
	*j.log = append(*j.log, "stop "+j.name)
}

func TestJobManager(t *testing.T) {
	t.Run("should start in order and stop in reverse", func(t *testing.T) {
		var log []string
		jm := jobs.NewJobManager(&fakeJob{name: "a", log: &log}, &fakeJob{name: "b", log: &log})

		require.NoError(t, jm.StartAll())
		jm.StopAll()

		assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, log)
	})

	t.Run("should stop started jobs when one fails", func(t *testing.T) {
		var log []string
		jm := jobs.NewJobManager(
			&fakeJob{name: "a", log: &log},
			&fakeJob{name: "b", startErr: errors.New("boom"), log: &log},
		)

		err := jm.StartAll()

		require.ErrorContains(t, err, "boom")
		assert.Equal(t, []string{"start a", "stop a"}, log)
	})

	t.Run("should tolerate StopAll without StartAll", func(t *testing.T) {
		jm := jobs.NewJobManager()

		assert.NotPanics(t, jm.StopAll)
	})
}
