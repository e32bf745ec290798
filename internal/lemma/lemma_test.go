package lemma

import "testing"

func TestSnowball_Lemma(t *testing.T) {
	s := NewSnowball()
	if got := s.Lemma("running"); got != "run" {
		t.Errorf("Lemma(running) = %q, want %q", got, "run")
	}
}
