package spinlock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMutex(t *testing.T) {
	const numWorker, numIncr = 8, 1000

	var mu Mutex
	counter := 0

	wg := new(sync.WaitGroup)
	wg.Add(numWorker)
	for i := 0; i < numWorker; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < numIncr; j++ {
				mu.Lock()
				counter++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, numWorker*numIncr, counter)
}
