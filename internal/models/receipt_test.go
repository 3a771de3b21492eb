package models

import "testing"

func TestDispatchResultStatusText(t *testing.T) {
	cases := []struct {
		name   string
		result DispatchResult
		want   string
	}{
		{"sent", DispatchResult{Sent: true}, "Sent successfully"},
		{"auth failure", DispatchResult{Sent: false, Kind: FailAuth}, "Failed to send (AuthFailure)"},
		{"transport failure", DispatchResult{Sent: false, Kind: FailTransport}, "Failed to send (TransportFailure)"},
		{"unknown failure", DispatchResult{Sent: false, Kind: FailUnknown}, "Failed to send (UnknownFailure)"},
		{"failure without kind", DispatchResult{Sent: false}, "Failed to send (UnknownFailure)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.result.StatusText(); got != tc.want {
				t.Fatalf("StatusText() = %q, want %q", got, tc.want)
			}
		})
	}
}
