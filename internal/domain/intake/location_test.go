package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestLocationExtractor_Extract(t *testing.T) {
	extractor := DefaultLocationExtractor()

	tests := []struct {
		name      string
		text      string
		wantFloor *int
		wantName  string
	}{
		{
			name:      "ordinal floor with cafeteria",
			text:      "AC not working 3rd floor cafeteria",
			wantFloor: intPtr(3),
			wantName:  "Cafeteria",
		},
		{
			name:      "floor n form",
			text:      "water cooler broken on floor 12",
			wantFloor: intPtr(12),
		},
		{
			name:      "floor no. form",
			text:      "light flickering floor no. 4 near reception",
			wantFloor: intPtr(4),
			wantName:  "Reception",
		},
		{
			name:      "bare number floor form",
			text:      "leak on 2 floor washroom",
			wantFloor: intPtr(2),
			wantName:  "Washroom",
		},
		{
			name:      "ground floor special case",
			text:      "ground floor lobby door jammed",
			wantFloor: intPtr(0),
			wantName:  "Reception",
		},
		{
			name:      "basement special case",
			text:      "seepage in the basement parking",
			wantFloor: intPtr(-1),
			wantName:  "Parking",
		},
		{
			name:      "numeric pattern outranks named floor",
			text:      "2nd floor above the basement storage",
			wantFloor: intPtr(2),
		},
		{
			name:     "no floor, no location",
			text:     "projector remote missing",
			wantName: "",
		},
		{
			name:      "location tie-break by table order",
			text:      "spill near the canteen toilet",
			wantFloor: nil,
			wantName:  "Cafeteria",
		},
		{
			name:     "empty text",
			text:     "",
			wantName: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Extract(tt.text)

			if tt.wantFloor == nil {
				assert.Nil(t, got.FloorNumber)
			} else {
				require.NotNil(t, got.FloorNumber)
				assert.Equal(t, *tt.wantFloor, *got.FloorNumber)
			}
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestLocationExtractor_Extract_CaseInsensitive(t *testing.T) {
	extractor := DefaultLocationExtractor()

	got := extractor.Extract("WATER LEAK ON 5TH FLOOR SERVER ROOM")
	require.NotNil(t, got.FloorNumber)
	assert.Equal(t, 5, *got.FloorNumber)
	assert.Equal(t, "Server Room", got.Name)
}
