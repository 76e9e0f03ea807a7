package usecase_test

import (
	"errors"
	"testing"
	"time"

	"khmer-format/internal/domain"
	"khmer-format/internal/usecase"
	mock_usecase "khmer-format/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

var phnomPenh = time.FixedZone("ICT", 7*60*60)

func TestTimeFormatter_Format(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		mode    string
		want    string
		wantErr error
	}{
		{name: "12h digits", text: "1:22 PM", mode: "digits", want: "ម៉ោង១ និង ២២ នាទី រសៀល"},
		{name: "24h digits", text: "13:22", mode: "digits", want: "ម៉ោង១ និង ២២ នាទី រសៀល"},
		{name: "12h words", text: "1:22 PM", mode: "words", want: "ម៉ោងមួយ និង ម្ភៃពីរ នាទី រសៀល"},
		{name: "24h words", text: "13:22", mode: "words", want: "ម៉ោងមួយ និង ម្ភៃពីរ នាទី រសៀល"},
		{name: "midnight", text: "12:00 AM", mode: "digits", want: "ម៉ោង១២ និង ០ នាទី យប់"},
		{name: "noon", text: "12:05 pm", mode: "digits", want: "ម៉ោង១២ និង ៥ នាទី រសៀល"},
		{name: "morning with loose spacing", text: "  7 : 05 am ", mode: "digits", want: "ម៉ោង៧ និង ៥ នាទី ព្រឹក"},
		{name: "evening", text: "18:00", mode: "digits", want: "ម៉ោង៦ និង ០ នាទី ល្ងាច"},
		{name: "last minute in words", text: "23:59", mode: "words", want: "ម៉ោងដប់មួយ និង ហាសិបប្រាំបួន នាទី ល្ងាច"},
		{name: "zero hour in words", text: "00:00", mode: "words", want: "ម៉ោងដប់ពីរ និង សូន្យ នាទី យប់"},
		{name: "invalid mode", text: "13:22", mode: "text", wantErr: domain.ErrInvalidMode},
		{name: "invalid format", text: "1:5", mode: "digits", wantErr: domain.ErrInvalidTimeFormat},
		{name: "invalid minute", text: "12:60", mode: "digits", wantErr: domain.ErrInvalidMinute},
		{name: "invalid 24h hour", text: "24:00", mode: "digits", wantErr: domain.ErrInvalidHour},
		{name: "invalid 12h hour", text: "13:00 PM", mode: "words", wantErr: domain.ErrInvalidHour},
		{name: "bad time reported before bad mode", text: "bad", mode: "xx", wantErr: domain.ErrInvalidTimeFormat},
		{name: "bad minute reported before bad mode", text: "10:61", mode: "xx", wantErr: domain.ErrInvalidMinute},
	}

	formatter := usecase.NewTimeFormatter(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatter.Format(tt.text, tt.mode)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeFormatter_FormatInstant(t *testing.T) {
	formatter := usecase.NewTimeFormatter(nil)
	instant := time.Date(2025, 1, 1, 13, 22, 0, 0, phnomPenh)

	got, err := formatter.FormatInstant(instant, "digits")
	assert.NoError(t, err)
	assert.Equal(t, "ម៉ោង១ និង ២២ នាទី រសៀល", got)

	got, err = formatter.FormatInstant(instant, "words")
	assert.NoError(t, err)
	assert.Equal(t, "ម៉ោងមួយ និង ម្ភៃពីរ នាទី រសៀល", got)

	_, err = formatter.FormatInstant(instant, "")
	assert.ErrorIs(t, err, domain.ErrInvalidMode)
}

func TestTimeFormatter_FormatNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	utcNow := time.Date(2025, 1, 1, 6, 22, 0, 0, time.UTC)

	tests := []struct {
		name     string
		mode     string
		timezone string
		setup    func(clock *mock_usecase.MockClock)
		want     string
		wantErr  error
	}{
		{
			name:     "resolves the requested timezone",
			mode:     "digits",
			timezone: "Asia/Phnom_Penh",
			setup: func(clock *mock_usecase.MockClock) {
				clock.EXPECT().LoadLocation("Asia/Phnom_Penh").Return(phnomPenh, nil)
				clock.EXPECT().Now().Return(utcNow)
			},
			want: "ម៉ោង១ និង ២២ នាទី រសៀល",
		},
		{
			name: "empty timezone keeps the clock location",
			mode: "words",
			setup: func(clock *mock_usecase.MockClock) {
				clock.EXPECT().Now().Return(utcNow)
			},
			want: "ម៉ោងប្រាំមួយ និង ម្ភៃពីរ នាទី ព្រឹក",
		},
		{
			name:     "unknown timezone",
			mode:     "digits",
			timezone: "Not/A_Real_Timezone",
			setup: func(clock *mock_usecase.MockClock) {
				clock.EXPECT().LoadLocation("Not/A_Real_Timezone").Return(nil, errors.New("unknown time zone Not/A_Real_Timezone"))
			},
			wantErr: domain.ErrInvalidTimezone,
		},
		{
			name: "invalid mode",
			mode: "roman",
			setup: func(clock *mock_usecase.MockClock) {
				clock.EXPECT().Now().Return(utcNow)
			},
			wantErr: domain.ErrInvalidMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mClock := mock_usecase.NewMockClock(ctrl)
			tt.setup(mClock)

			formatter := usecase.NewTimeFormatter(mClock)
			got, err := formatter.FormatNow(tt.mode, tt.timezone)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
