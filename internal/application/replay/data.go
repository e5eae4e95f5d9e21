// Package replay records and plays back the intents of a game session
// frame by frame, so a run can be reproduced without a window.
package replay

// ClearSelection is the Select value that deselects the pending tower
const ClearSelection = "NONE"

// Point is a pixel position on the field
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FrameInput records the intents issued on a single frame
type FrameInput struct {
	F       int    `json:"f"`                 // Frame number
	Restart bool   `json:"restart,omitempty"` // Restart
	Pause   bool   `json:"pause,omitempty"`   // TogglePause
	Select  string `json:"select,omitempty"`  // Tower type, or ClearSelection
	Place   *Point `json:"place,omitempty"`   // PlaceTower at pixel
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Name      string       `json:"name"`
	FrameMs   int          `json:"frameMs"` // fixed frame length used on playback
	StartTime string       `json:"startTime,omitempty"`
	Frames    []FrameInput `json:"frames"`
}
