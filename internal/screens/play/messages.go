package play

import "github.com/abhisek/mathbird/internal/problemgen"

// questionReadyMsg is sent when the next question has been generated.
type questionReadyMsg struct {
	Question problemgen.Question
	Err      error
}
