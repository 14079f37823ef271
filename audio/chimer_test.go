package audio

import "testing"

func TestNilChimerIsSafe(t *testing.T) {
	var c *Chimer

	// The clock runs without audio; nil receivers must no-op
	c.ChimeHour()
	c.Close()
}

func TestSilentChimerIsSafe(t *testing.T) {
	// A chimer whose speaker failed to initialize stays silent
	c := &Chimer{}

	c.ChimeHour()
	c.Close()
}
