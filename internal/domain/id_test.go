package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCampaignID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    CampaignID
		wantErr bool
	}{
		{name: "valid id", input: "42", want: 42},
		{name: "empty", input: "", wantErr: true},
		{name: "non-numeric", input: "not-an-id", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "hex-looking", input: "0xff", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCampaignID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedID)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "7", NGOID(7).String())
	assert.Equal(t, "42", CampaignID(42).String())
	assert.Equal(t, "1001", DonationID(1001).String())
}
