package ticket

import (
	"context"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ticketNumberPattern = regexp.MustCompile(`^TKT-\d+-[0-9A-Za-z]{4}$`)

func TestDefaultNumberGenerator_Format(t *testing.T) {
	gen := NewDefaultNumberGenerator()

	number, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Regexp(t, ticketNumberPattern, number)
}

func TestDefaultNumberGenerator_UniqueUnderConcurrency(t *testing.T) {
	gen := NewDefaultNumberGenerator()

	const total = 500
	results := make(chan string, total)
	var wg sync.WaitGroup
	for i := 0; i < total; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			number, err := gen.Generate(context.Background())
			assert.NoError(t, err)
			results <- number
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool, total)
	for number := range results {
		assert.False(t, seen[number], "duplicate ticket number %s", number)
		seen[number] = true
	}
	assert.Len(t, seen, total)
}

func TestImportBatch_Lifecycle(t *testing.T) {
	batch, err := NewImportBatch("tickets.csv", 25)
	require.NoError(t, err)
	assert.Equal(t, BatchStatusProcessing, batch.Status())
	assert.NotEmpty(t, batch.ID())
	assert.Nil(t, batch.CompletedAt())

	batch.Complete(22, 3)
	assert.Equal(t, BatchStatusCompleted, batch.Status())
	assert.Equal(t, 22, batch.ValidRows())
	assert.Equal(t, 3, batch.ErrorRows())
	require.NotNil(t, batch.CompletedAt())
}

func TestNewImportBatch_Validation(t *testing.T) {
	_, err := NewImportBatch("", 5)
	assert.Error(t, err)

	_, err = NewImportBatch("tickets.csv", -1)
	assert.Error(t, err)
}
