package domain

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to SubmissionStatus
		allowed  bool
	}{
		{SubmissionStatusPending, SubmissionStatusProcessing, true},
		{SubmissionStatusProcessing, SubmissionStatusApproved, true},
		{SubmissionStatusProcessing, SubmissionStatusRejected, true},
		{SubmissionStatusPending, SubmissionStatusApproved, false},
		{SubmissionStatusPending, SubmissionStatusRejected, false},
		{SubmissionStatusApproved, SubmissionStatusProcessing, false},
		{SubmissionStatusRejected, SubmissionStatusProcessing, false},
		{SubmissionStatusApproved, SubmissionStatusRejected, false},
		{SubmissionStatusProcessing, SubmissionStatusPending, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.allowed {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if SubmissionStatusPending.IsTerminal() || SubmissionStatusProcessing.IsTerminal() {
		t.Fatal("pending and processing are not terminal")
	}
	if !SubmissionStatusApproved.IsTerminal() || !SubmissionStatusRejected.IsTerminal() {
		t.Fatal("approved and rejected are terminal")
	}
}

func TestServiceTypeName(t *testing.T) {
	cases := map[string]string{
		"ktp":       "KTP",
		"kk":        "Kartu Keluarga",
		"akta":      "Akta Kelahiran",
		"skck":      "SKCK",
		"domisili":  "Surat Domisili",
		"usaha":     "Surat Usaha",
		"kendaraan": "Surat Kendaraan",
		"lainnya":   "Lainnya",
		"unknown":   "Lainnya",
		"":          "Lainnya",
	}
	for key, want := range cases {
		if got := ServiceTypeName(key); got != want {
			t.Errorf("ServiceTypeName(%q) = %q, want %q", key, got, want)
		}
	}
}
