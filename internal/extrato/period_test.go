package extrato_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diediegodie/inkledger/internal/extrato"
)

func TestResolvePeriod(t *testing.T) {
	type args struct {
		month int
		year  int
		now   time.Time
	}

	type testCase struct {
		name    string
		args    args
		want    extrato.Period
		wantErr error
	}

	tests := []testCase{
		{
			name: "ExplicitPeriod",
			args: args{month: 3, year: 2025, now: time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)},
			want: extrato.Period{Month: 3, Year: 2025},
		},
		{
			name: "DefaultsToPreviousMonth",
			args: args{now: time.Date(2025, 8, 15, 10, 30, 0, 0, time.UTC)},
			want: extrato.Period{Month: 7, Year: 2025},
		},
		{
			name: "JanuaryWrapsToPreviousDecember",
			args: args{now: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
			want: extrato.Period{Month: 12, Year: 2024},
		},
		{
			name: "EndOfLongMonth",
			args: args{now: time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC)},
			want: extrato.Period{Month: 2, Year: 2025},
		},
		{
			name:    "MonthTooLarge",
			args:    args{month: 13, year: 2025},
			wantErr: extrato.ErrInvalidMonth,
		},
		{
			name:    "MonthNegative",
			args:    args{month: -1, year: 2025},
			wantErr: extrato.ErrInvalidMonth,
		},
		{
			name:    "MonthWithoutYear",
			args:    args{month: 5},
			wantErr: extrato.ErrInvalidYear,
		},
		{
			name:    "YearTooOld",
			args:    args{month: 5, year: 1999},
			wantErr: extrato.ErrInvalidYear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extrato.ResolvePeriod(tt.args.month, tt.args.year, tt.args.now)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriodRange(t *testing.T) {
	p := extrato.Period{Month: 12, Year: 2024}

	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), p.Start())
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), p.End())
}
