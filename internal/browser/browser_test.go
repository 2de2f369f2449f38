package browser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpen(t *testing.T) {
	orig := openFunc
	defer func() { openFunc = orig }()

	t.Run("passes the url through", func(t *testing.T) {
		var got string
		openFunc = func(url string) error {
			got = url
			return nil
		}

		err := Open("https://example.test")

		assert.NoError(t, err)
		assert.Equal(t, "https://example.test", got)
	})

	t.Run("propagates launch errors", func(t *testing.T) {
		openFunc = func(string) error { return errors.New("no browser") }

		assert.Error(t, Open("https://example.test"))
	})
}
