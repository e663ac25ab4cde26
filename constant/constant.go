package constant

const (
	WINDOW_TITLE   = "TinyEMU"
	DEFAULT_WIDTH  = 640
	DEFAULT_HEIGHT = 400
	TARGET_FPS     = 60
)
