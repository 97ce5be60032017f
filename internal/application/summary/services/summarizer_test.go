package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractiveSummarizer_Summarize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "three sentences", in: "A. B. C.", want: "A. B. [AI summary simulated]"},
		{name: "two sentences", in: "Hello. World.", want: "Hello. World. [AI summary simulated]"},
		{name: "single fragment", in: "No terminator here", want: "No terminator here. [AI summary simulated]"},
		{name: "one sentence with terminator", in: "Only one.", want: "Only one. [AI summary simulated]"},
		{name: "decimal point counts as terminator", in: "Pi is 3.14 roughly. Yes.", want: "Pi is 3.14 roughly. [AI summary simulated]"},
		{name: "empty", in: "", want: ". [AI summary simulated]"},
	}

	s := NewExtractiveSummarizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Summarize(tt.in))
		})
	}
}
