//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package xcomp

// TouchEventType represents OH_NativeXComponent_TouchEventType values.
type TouchEventType int32

// Touch event type constants matching the native enum.
const (
	TouchDown    TouchEventType = 0 // Finger pressed
	TouchUp      TouchEventType = 1 // Finger lifted
	TouchMove    TouchEventType = 2 // Finger moved on the surface
	TouchCancel  TouchEventType = 3 // Event interrupted by the system
	TouchUnknown TouchEventType = 4 // Unidentified
)

// String returns the string representation of the touch event type.
func (t TouchEventType) String() string {
	switch t {
	case TouchDown:
		return "down"
	case TouchUp:
		return "up"
	case TouchMove:
		return "move"
	case TouchCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// MaxTouchPoints is the native OH_MAX_TOUCH_POINTS_NUMBER.
const MaxTouchPoints = 10

// TouchPoint mirrors OH_NativeXComponent_TouchPoint. Field order and types
// must match the C struct exactly; the native side writes it in place.
type TouchPoint struct {
	ID        int32   // Finger id
	ScreenX   float32 // X relative to the screen
	ScreenY   float32 // Y relative to the screen
	X         float32 // X relative to the XComponent
	Y         float32 // Y relative to the XComponent
	Type      TouchEventType
	Size      float64 // Contact area
	Force     float32 // Pressure
	Timestamp int64   // Nanoseconds
	IsPressed bool
}

// TouchEvent mirrors OH_NativeXComponent_TouchEvent, the out-record filled
// by OH_NativeXComponent_GetTouchEvent. xcomp fills it and hands it back;
// it never interprets the fields.
type TouchEvent struct {
	ID          int32
	ScreenX     float32
	ScreenY     float32
	X           float32
	Y           float32
	Type        TouchEventType
	Size        float64
	Force       float32
	DeviceID    int64
	Timestamp   int64
	TouchPoints [MaxTouchPoints]TouchPoint
	NumPoints   uint32
}
