package constants

import "time"

// Chime Synthesis
const (
	// ChimeSampleRate is the speaker sample rate in Hz
	ChimeSampleRate = 44100

	// SpeakerBufferLength sizes the speaker's internal buffer
	SpeakerBufferLength = 100 * time.Millisecond

	// ChimeToneDuration is the length of each chime tone
	ChimeToneDuration = 150 * time.Millisecond
)

// Chime tone frequencies in Hz, played low then high on the hour
const (
	ChimeToneLowHz  = 660
	ChimeToneHighHz = 880
)
