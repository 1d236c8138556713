package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrInt64(v int64) *int64       { return &v }
func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }

func TestCreateItemRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request CreateItemRequest
		wantErr bool
	}{
		{
			name: "valid request",
			request: CreateItemRequest{
				Name:      "Widget",
				Quantity:  ptrInt64(10),
				UnitPrice: ptrFloat64(5.0),
			},
			wantErr: false,
		},
		{
			name: "missing name",
			request: CreateItemRequest{
				Quantity:  ptrInt64(10),
				UnitPrice: ptrFloat64(5.0),
			},
			wantErr: true,
		},
		{
			name: "blank name",
			request: CreateItemRequest{
				Name:      "   ",
				Quantity:  ptrInt64(10),
				UnitPrice: ptrFloat64(5.0),
			},
			wantErr: true,
		},
		{
			name: "missing quantity",
			request: CreateItemRequest{
				Name:      "Widget",
				UnitPrice: ptrFloat64(5.0),
			},
			wantErr: true,
		},
		{
			name: "missing unit price",
			request: CreateItemRequest{
				Name:     "Widget",
				Quantity: ptrInt64(10),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateItemRequest_ToCreateItemInput(t *testing.T) {
	request := CreateItemRequest{
		Name:      "Widget",
		Quantity:  ptrInt64(10),
		UnitPrice: ptrFloat64(5.0),
	}

	input := request.ToCreateItemInput()
	assert.Equal(t, "Widget", input.Name)
	require.NotNil(t, input.Quantity)
	assert.Equal(t, int64(10), *input.Quantity)
}

func TestUpdateItemRequest_Validate(t *testing.T) {
	t.Run("valid partial update", func(t *testing.T) {
		request := UpdateItemRequest{Quantity: ptrInt64(20)}
		assert.NoError(t, request.Validate())
	})

	t.Run("empty update rejected", func(t *testing.T) {
		request := UpdateItemRequest{}
		assert.Error(t, request.Validate())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		request := UpdateItemRequest{Name: ptrString("  ")}
		assert.Error(t, request.Validate())
	})
}
