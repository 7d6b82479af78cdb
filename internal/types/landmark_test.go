package types

import "testing"

func strPtr(s string) *string { return &s }

func TestFullAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		landmark Landmark
		want     string
	}{
		{
			name: "all parts present",
			landmark: Landmark{
				HouseNumberOrOfficeName: strPtr("12 Nguyen Hue"),
				Ward:                    "Ben Nghe",
				District:                "District 1",
				Province:                "Ho Chi Minh City",
				Country:                 "Vietnam",
			},
			want: "12 Nguyen Hue, Ben Nghe, District 1, Ho Chi Minh City, Vietnam",
		},
		{
			name: "no house number",
			landmark: Landmark{
				Ward:     "Ben Nghe",
				District: "District 1",
				Province: "Ho Chi Minh City",
				Country:  "Vietnam",
			},
			want: "Ben Nghe, District 1, Ho Chi Minh City, Vietnam",
		},
		{
			name: "empty house number treated as absent",
			landmark: Landmark{
				HouseNumberOrOfficeName: strPtr(""),
				Ward:                    "Ben Nghe",
				District:                "District 1",
				Province:                "Ho Chi Minh City",
				Country:                 "Vietnam",
			},
			want: "Ben Nghe, District 1, Ho Chi Minh City, Vietnam",
		},
		{
			name: "empty middle parts skipped",
			landmark: Landmark{
				Ward:    "Ben Nghe",
				Country: "Vietnam",
			},
			want: "Ben Nghe, Vietnam",
		},
		{
			name:     "nothing present",
			landmark: Landmark{},
			want:     "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.landmark.FullAddress(); got != tt.want {
				t.Fatalf("unexpected full address: got=%q want=%q", got, tt.want)
			}
		})
	}
}
