package gitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantName  string
		wantErr   error
	}{
		{
			name:      "Valid HTTPS URL",
			url:       "https://github.com/testuser/testrepo",
			wantOwner: "testuser",
			wantName:  "testrepo",
		},
		{
			name:      "Trailing slash",
			url:       "https://github.com/testuser/testrepo/",
			wantOwner: "testuser",
			wantName:  "testrepo",
		},
		{
			name:      "Extra path segments are ignored",
			url:       "https://github.com/testuser/testrepo/tree/main/src",
			wantOwner: "testuser",
			wantName:  "testrepo",
		},
		{
			name:    "Missing repository name",
			url:     "https://github.com/testuser",
			wantErr: ErrInvalidPath,
		},
		{
			name:    "Root path",
			url:     "https://github.com/",
			wantErr: ErrInvalidPath,
		},
		{
			name:    "Wrong host",
			url:     "https://gitlab.com/testuser/testrepo",
			wantErr: ErrInvalidHost,
		},
		{
			name:    "No host at all",
			url:     "not-a-url",
			wantErr: ErrInvalidHost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, name, err := ParseRepoURL(tt.url)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantName, name)
		})
	}
}
