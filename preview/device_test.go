// SPDX-License-Identifier: EPL-2.0

package preview

import (
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetachableReader(t *testing.T) {
	t.Parallel()

	r := &detachableReader{r: strings.NewReader("abcdef")}

	buf := make([]byte, 3)
	n, err := r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(buf[:n]))

	r.Detach()
	assert.Nil(t, r.r, "the stopped stream must not keep the PCM chain alive")

	n, err = r.Read(buf)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)

	// detaching twice is harmless
	r.Detach()
}

func TestDetachableReader_ConcurrentDetach(t *testing.T) {
	t.Parallel()

	r := &detachableReader{r: strings.NewReader(strings.Repeat("x", 1<<16))}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		buf := make([]byte, 64)
		for {
			if _, err := r.Read(buf); err != nil {
				return
			}
		}
	}()

	r.Detach()
	wg.Wait()

	_, err := r.Read(make([]byte, 1))
	assert.ErrorIs(t, err, io.EOF)
}
