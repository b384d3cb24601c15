package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDomainError_Is(t *testing.T) {
	err := ErrNotFound.WithMessage("Asset not found")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, "Asset not found", err.Error())

	wrapped := fmt.Errorf("loading: %w", err)
	var de *DomainError
	assert.True(t, errors.As(wrapped, &de))
	assert.Equal(t, "NOT_FOUND", de.Code)
}

func TestDomainError_Wrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := ErrDeleteFailed.Wrap("Failed to delete category.", cause)

	assert.ErrorIs(t, err, ErrDeleteFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to delete category.", err.Error())
	assert.Nil(t, ErrDeleteFailed.Unwrap())
}

func TestFilter_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Filter
		want Filter
	}{
		{
			name: "zero value gets defaults",
			in:   Filter{},
			want: Filter{Page: 1, PageSize: DefaultPageSize, OrderBy: "name", OrderDir: "asc"},
		},
		{
			name: "page size capped",
			in:   Filter{Page: 3, PageSize: 500, OrderBy: "status", OrderDir: "DESC", Search: "  laptop "},
			want: Filter{Page: 3, PageSize: MaxPageSize, OrderBy: "status", OrderDir: "desc", Search: "laptop"},
		},
		{
			name: "unknown direction falls back to asc",
			in:   Filter{Page: -1, PageSize: 10, OrderBy: "name", OrderDir: "sideways"},
			want: Filter{Page: 1, PageSize: 10, OrderBy: "name", OrderDir: "asc"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, Filter{Page: 1, PageSize: 5}.Offset())
	assert.Equal(t, 10, Filter{Page: 3, PageSize: 5}.Offset())
}

func TestNewPaginated(t *testing.T) {
	p := NewPaginated([]int{1, 2, 3, 4, 5}, 12, 1, 5)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, int64(12), p.Total)

	empty := NewPaginated([]int{}, 0, 1, 5)
	assert.Equal(t, 0, empty.TotalPages)

	mapped := MapPaginated(p, func(i int) string { return fmt.Sprint(i * 2) })
	assert.Equal(t, []string{"2", "4", "6", "8", "10"}, mapped.Items)
	assert.Equal(t, p.TotalPages, mapped.TotalPages)
}

func TestNilIfBlank(t *testing.T) {
	blank := "   "
	padded := " Rack 4 "
	assert.Nil(t, NilIfBlank(nil))
	assert.Nil(t, NilIfBlank(&blank))
	assert.Equal(t, "Rack 4", *NilIfBlank(&padded))
	assert.Equal(t, "", Deref(nil))
	assert.Equal(t, " Rack 4 ", Deref(&padded))
}

func TestRecordChanged(t *testing.T) {
	e := NewRecordChanged(EventRecordDeleted, "Category", uuid.New())
	assert.Equal(t, EventRecordDeleted, e.EventType())
	assert.Equal(t, "Category", e.AggregateType())
	assert.False(t, e.OccurredAt().IsZero())
	assert.Len(t, RecordEventTypes(), 3)
}
