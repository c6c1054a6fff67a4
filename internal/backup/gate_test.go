package backup_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/diediegodie/inkledger/internal/backup"
)

func TestGate_VerifyBeforeTransfer(t *testing.T) {
	tests := []struct {
		name     string
		required bool
		exists   bool
		err      error
		want     bool
	}{
		{
			name:     "strict allows when backup exists",
			required: true,
			exists:   true,
			want:     true,
		},
		{
			name:     "strict blocks when backup missing",
			required: true,
			exists:   false,
			want:     false,
		},
		{
			name:     "strict fails closed on provider error",
			required: true,
			err:      errors.New("backup service unreachable"),
			want:     false,
		},
		{
			name:     "flexible proceeds without backup",
			required: false,
			exists:   false,
			want:     true,
		},
		{
			name:     "flexible proceeds on provider error",
			required: false,
			err:      errors.New("backup service unreachable"),
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			provider := backup.NewMockProvider(ctrl)
			provider.EXPECT().VerifyBackupExists(gomock.Any(), 2025, 7).Return(tt.exists, tt.err)

			gate := backup.NewGate(provider, tt.required)
			assert.Equal(t, tt.want, gate.VerifyBeforeTransfer(context.Background(), 2025, 7))
		})
	}
}
