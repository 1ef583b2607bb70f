package quiz

import "testing"

func TestNextDifficulty(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		perf      Performance
		want      int
	}{
		{
			name:      "no data uses neutral prior",
			requested: 5,
			perf:      Performance{},
			want:      5,
		},
		{
			name:      "high accuracy steps up",
			requested: 5,
			perf:      Performance{CorrectAnswers: 9, TotalAnswers: 10, AverageResponseTime: 8},
			want:      6,
		},
		{
			name:      "low accuracy steps down",
			requested: 5,
			perf:      Performance{CorrectAnswers: 2, TotalAnswers: 10},
			want:      4,
		},
		{
			name:      "exactly 0.8 does not step up",
			requested: 5,
			perf:      Performance{CorrectAnswers: 8, TotalAnswers: 10, AverageResponseTime: 8},
			want:      5,
		},
		{
			name:      "exactly 0.5 does not step down",
			requested: 5,
			perf:      Performance{CorrectAnswers: 5, TotalAnswers: 10, AverageResponseTime: 8},
			want:      5,
		},
		{
			name:      "speed bonus stacks with accuracy step",
			requested: 5,
			perf:      Performance{CorrectAnswers: 9, TotalAnswers: 10, AverageResponseTime: 3},
			want:      7,
		},
		{
			name:      "speed bonus alone at moderate accuracy",
			requested: 5,
			perf:      Performance{CorrectAnswers: 3, TotalAnswers: 4, AverageResponseTime: 2},
			want:      6,
		},
		{
			name:      "clamps at ten",
			requested: 10,
			perf:      Performance{CorrectAnswers: 10, TotalAnswers: 10, AverageResponseTime: 1},
			want:      10,
		},
		{
			name:      "clamps at one",
			requested: 1,
			perf:      Performance{CorrectAnswers: 0, TotalAnswers: 10},
			want:      1,
		},
		{
			name:      "slow and accurate gets only the accuracy step",
			requested: 4,
			perf:      Performance{CorrectAnswers: 10, TotalAnswers: 10, AverageResponseTime: 12},
			want:      5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextDifficulty(tt.requested, tt.perf)
			if got != tt.want {
				t.Fatalf("NextDifficulty(%d, %+v) = %d, want %d", tt.requested, tt.perf, got, tt.want)
			}
		})
	}
}

func TestPerformance_Accuracy(t *testing.T) {
	if got := (Performance{}).Accuracy(); got != 0.5 {
		t.Fatalf("empty window accuracy = %v, want neutral 0.5", got)
	}
	if got := (Performance{CorrectAnswers: 3, TotalAnswers: 4}).Accuracy(); got != 0.75 {
		t.Fatalf("accuracy = %v, want 0.75", got)
	}
}
