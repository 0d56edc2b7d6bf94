package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobmag-scraper/internal/crawler"
)

func TestSalvageable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"deadline exceeded keeps the batch", context.DeadlineExceeded, true},
		{"cancellation keeps the batch", context.Canceled, true},
		{"wrapped deadline keeps the batch", fmt.Errorf("load listing page: %w", context.DeadlineExceeded), true},
		{"plain crawl failure does not", errors.New("browser crashed"), false},
		{"empty listing does not", crawler.ErrNoLinks, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, salvageable(tt.err))
		})
	}
}
