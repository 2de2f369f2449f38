// Package utils provides common utility functions used throughout the application.
package utils

import (
	"crypto/rand"
	"sync"
)

const charset = "abcdefghijklmnopqrstuvwxyz0123456789"

// GetRandomString generates a cryptographically secure random string.
func GetRandomString(length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return string(b)
}

// FanOut runs worker over every item concurrently and returns one result and
// one error slot per item, both in input order. A nil error slot means the
// corresponding result is valid.
func FanOut[R any, T any](items []R, worker func(R) (T, error)) ([]T, []error) {
	results := make([]T, len(items))
	errs := make([]error, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item R) {
			defer wg.Done()
			results[i], errs[i] = worker(item)
		}(i, item)
	}
	wg.Wait()

	return results, errs
}
