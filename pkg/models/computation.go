package models

import (
	"time"

	"github.com/wldblbll/Tube-Resonance/pkg/acoustics"
)

// Computation represents one stored resonance computation (for internal use)
type Computation struct {
	ID        string           `json:"id"`
	SessionID string           `json:"session_id"`
	Params    acoustics.Params `json:"params"`
	Result    acoustics.Result `json:"result"`
	CreatedAt time.Time        `json:"created_at"`
}
