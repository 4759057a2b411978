package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("wrapped: %w", domain.ErrNotFound), http.StatusNotFound},
		{"bad argument", fmt.Errorf("wrapped: %w", domain.ErrBadArgument), http.StatusBadRequest},
		{"conflict", fmt.Errorf("wrapped: %w", domain.ErrConflict), http.StatusConflict},
		{"invariant violation", fmt.Errorf("wrapped: %w", domain.ErrInvariantViolation), http.StatusInternalServerError},
		{"internal", fmt.Errorf("wrapped: %w", domain.ErrInternal), http.StatusInternalServerError},
		{"unclassified", errors.New("plain error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForError(tt.err))
		})
	}
}
